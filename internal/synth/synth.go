// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package synth builds a complete phishing-email HTML document locally when
// the model is unavailable or its response yields no usable HTML. The output
// is deliberately shaped to round-trip through the extract package: the
// sender comment matches the first sender pattern and the training
// disclaimer satisfies the safety check.
package synth

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

// Request carries the plain-string request fields the synthesizer works from.
type Request struct {
	Scenario string
	Industry string
	Urgency  string
	Tone     string
}

// fallbackSenders maps each industry to the canned sender identity embedded
// in synthesized templates. Unknown industries get the generic pair.
var fallbackSenders = map[string][2]string{
	"Banking":          {"Security Department", "security@fake-firstnational-alerts.com"},
	"Healthcare":       {"Patient Services", "admin@fake-healthpartners.org"},
	"Online Retail":    {"Customer Service", "orders@fake-ecommerce-orders.com"},
	"Technology":       {"Account Security", "noreply@fake-techsupport.com"},
	"Government":       {"Official Notice", "notifications@fake-government-alerts.gov"},
	"Education":        {"IT Services", "support@fake-university-systems.edu"},
	"Insurance":        {"Claims Department", "claims@fake-insurance-services.com"},
	"Retail":           {"Customer Support", "service@fake-retailsupport.net"},
	"Cloud Service":    {"Security Team", "alerts@fake-cloudsecurity.org"},
	"Social Media":     {"Account Safety", "security@fake-socialmedia.com"},
	"Shipping Company": {"Delivery Notice", "tracking@fake-shipping.com"},
}

// SenderFor returns the fallback sender identity for an industry.
func SenderFor(industry string) (name, email string) {
	if s, ok := fallbackSenders[industry]; ok {
		return s[0], s[1]
	}
	return "Support Team", "support@fake-secureservices.net"
}

// templateData feeds the fallback document template.
type templateData struct {
	Scenario     string
	Industry     string
	IndustrySlug string
	SenderName   string
	SenderEmail  string
	Year         int
}

// Template synthesizes a self-contained styled HTML email for the request.
// The document embeds the sender comment and training disclaimer, uses only
// fake verification URLs, and has no external dependencies. The only failure
// mode is template execution, surfaced as an error to be treated as fatal.
func Template(req Request) (string, error) {
	name, email := SenderFor(req.Industry)

	data := templateData{
		Scenario:     req.Scenario,
		Industry:     req.Industry,
		IndustrySlug: strings.ReplaceAll(strings.ToLower(req.Industry), " ", ""),
		SenderName:   name,
		SenderEmail:  email,
		Year:         time.Now().Year(),
	}

	var sb strings.Builder
	if err := fallbackTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("fallback synthesis: %w", err)
	}
	return sb.String(), nil
}

var fallbackTemplate = template.Must(template.New("fallback").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Urgent: {{.Scenario}} Required</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
            line-height: 1.6;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            background: white;
            padding: 0;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .header {
            background: linear-gradient(135deg, #1f4e79 0%, #2c5aa0 100%);
            color: white;
            padding: 20px;
            text-align: center;
            border-radius: 8px 8px 0 0;
        }
        .content {
            padding: 30px;
        }
        .alert-box {
            background-color: #fff3cd;
            border-left: 4px solid #ffc107;
            padding: 15px;
            margin: 20px 0;
            border-radius: 4px;
        }
        .button {
            display: inline-block;
            background: linear-gradient(135deg, #dc3545 0%, #c82333 100%);
            color: white;
            padding: 14px 28px;
            text-decoration: none;
            border-radius: 6px;
            font-weight: bold;
            margin: 20px 0;
            box-shadow: 0 2px 4px rgba(0,0,0,0.2);
        }
        .footer {
            background-color: #f8f9fa;
            padding: 20px;
            text-align: center;
            font-size: 12px;
            color: #6c757d;
            border-radius: 0 0 8px 8px;
            border-top: 1px solid #dee2e6;
        }
        .urgent {
            color: #dc3545;
            font-weight: bold;
        }
        .company-logo {
            font-size: 24px;
            font-weight: bold;
            margin-bottom: 5px;
        }
    </style>
</head>
<body>
    <!-- From: {{.SenderName}} <{{.SenderEmail}}> -->
    <!-- For training only – not a real phishing email -->

    <div class="container">
        <div class="header">
            <div class="company-logo">{{.Industry}}</div>
            <p>Security &amp; Compliance Department</p>
        </div>

        <div class="content">
            <h2 class="urgent">&#9888; Urgent: {{.Scenario}} Required</h2>

            <p>Dear Valued Customer,</p>

            <p>We have detected unusual activity on your account that requires immediate verification.
            To protect your account security and maintain compliance with our security policies,
            please take action within the next <strong>24 hours</strong>.</p>

            <div class="alert-box">
                <strong>&#128274; Security Notice:</strong> Your account access has been temporarily restricted
                due to suspicious activity detected from an unrecognized device.
            </div>

            <p><strong>Action Required:</strong> Click the button below to verify your account information
            and restore full access to your services.</p>

            <div style="text-align: center;">
                <a href="http://fake-{{.IndustrySlug}}-verification.com/verify" class="button">
                    Verify Account Now
                </a>
            </div>

            <p><strong class="urgent">Important:</strong> If you do not complete this verification
            within 24 hours, your account may be permanently suspended for security reasons.</p>

            <p>This verification process is mandatory and must be completed to ensure the safety
            of your personal information and account assets.</p>

            <p>Thank you for your immediate attention to this critical security matter.</p>

            <p>Best regards,<br>
            <strong>{{.SenderName}}</strong><br>
            {{.Industry}} Security Team</p>
        </div>

        <div class="footer">
            <p>This is an automated security message. Please do not reply to this email.</p>
            <p>{{.Industry}} | Security Department | Compliance Division</p>
            <p>&copy; {{.Year}} {{.Industry}}. All rights reserved.</p>
            <hr style="border: none; border-top: 1px solid #dee2e6; margin: 15px 0;">
            <p><em><strong>Training Notice:</strong> This is a simulated phishing email for cybersecurity training purposes only.</em></p>
        </div>
    </div>
</body>
</html>`))
