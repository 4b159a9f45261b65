// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package extract

import (
	"regexp"
	"strings"
)

// Built-in defaults used when a document carries no recognizable subject or
// sender. The default sender address doubles as the "nothing matched" marker
// that triggers industry inference.
const (
	DefaultSubject     = "Generated Phishing Email"
	DefaultSenderName  = "Security Team"
	DefaultSenderEmail = "security@example.com"
)

// Components holds the email fields recovered from an HTML document.
// Every field is always populated; extraction never fails.
type Components struct {
	Subject     string
	SenderName  string
	SenderEmail string
}

var (
	subjectPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`),
		regexp.MustCompile(`(?is)<!--\s*Subject:\s*([^-]+)\s*-->`),
		regexp.MustCompile(`(?is)<meta\s+name=['"]subject['"][^>]*content=['"]([^'"]+)['"]`),
	}

	// Sender shapes, most specific first: the comment convention the prompt
	// asks for, a Sender: comment variant, the same without a space before
	// the angle bracket, and a bare From: line in the body text.
	senderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`<!--\s*From:\s*([^<]+)\s*<([^>]+)>\s*-->`),
		regexp.MustCompile(`<!--\s*Sender:\s*([^<]+)\s*<([^>]+)>\s*-->`),
		regexp.MustCompile(`<!--\s*From:\s*([^<]+)<([^>]+)>\s*-->`),
		regexp.MustCompile(`From:\s*([^<]+)\s*<([^>]+)>`),
	}

	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// industrySender maps content keywords to a canned sender identity. Groups
// are tested in order; the first group with any keyword present wins.
type industrySender struct {
	keywords []string
	name     string
	email    string
}

var industrySenders = []industrySender{
	{[]string{"bank", "account", "financial", "credit"}, "Security Department", "security@fake-firstnational-bank.com"},
	{[]string{"health", "medical", "patient", "clinic"}, "Patient Services", "admin@fake-healthsystems.org"},
	{[]string{"order", "shipping", "delivery", "purchase"}, "Customer Service", "orders@fake-retailservices.com"},
	{[]string{"microsoft", "google", "tech", "software", "cloud"}, "Account Security", "noreply@fake-techsupport.com"},
	{[]string{"government", "irs", "tax", "official"}, "Official Notice", "notifications@fake-government-alerts.gov"},
	{[]string{"education", "university", "student", "academic"}, "IT Services", "support@fake-university-systems.edu"},
	{[]string{"insurance", "policy", "claim", "premium"}, "Claims Department", "claims@fake-insurance-services.com"},
}

// EmailComponents extracts subject and sender identity from an HTML
// document. Fields that cannot be found fall back to defaults, and when no
// sender comment matches at all the sender is inferred from industry
// keywords in the content so the result still looks plausible.
func EmailComponents(htmlContent string) Components {
	c := Components{
		Subject:     DefaultSubject,
		SenderName:  DefaultSenderName,
		SenderEmail: DefaultSenderEmail,
	}

	for _, p := range subjectPatterns {
		if m := p.FindStringSubmatch(htmlContent); m != nil {
			subject := strings.TrimSpace(m[1])
			subject = strings.TrimSpace(tagPattern.ReplaceAllString(subject, ""))
			c.Subject = truncate(subject, 100)
			break
		}
	}

	for _, p := range senderPatterns {
		if m := p.FindStringSubmatch(htmlContent); m != nil {
			c.SenderName = strings.TrimSpace(m[1])
			c.SenderEmail = strings.TrimSpace(m[2])
			break
		}
	}

	if c.SenderEmail == DefaultSenderEmail {
		c.SenderName, c.SenderEmail = inferSender(htmlContent)
	}

	return c
}

// inferSender picks a canned sender identity from industry keywords found in
// the content, with a generic fallback when nothing matches.
func inferSender(htmlContent string) (name, email string) {
	content := strings.ToLower(htmlContent)
	for _, s := range industrySenders {
		for _, kw := range s.keywords {
			if strings.Contains(content, kw) {
				return s.name, s.email
			}
		}
	}
	return "Support Team", "support@fake-secureservices.net"
}

// truncate cuts a string to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
