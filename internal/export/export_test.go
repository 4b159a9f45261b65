// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"strings"
	"testing"

	"phishforge/internal/models"
)

func sampleTemplate() models.EmailTemplate {
	return models.EmailTemplate{
		ID:          "abc-123",
		Subject:     "Verify Your Account",
		SenderName:  "Security Team",
		SenderEmail: "security@fake-alerts.com",
		HTMLContent: "<html><body><p>Hello</p></body></html>",
	}
}

func TestEML(t *testing.T) {
	msg := EML(sampleTemplate())

	wantHeaders := []string{
		"From: Security Team <security@fake-alerts.com>\r\n",
		"Subject: Verify Your Account\r\n",
		"Content-Type: text/html; charset=utf-8\r\n",
		"MIME-Version: 1.0\r\n",
	}
	for _, h := range wantHeaders {
		if !strings.Contains(msg, h) {
			t.Errorf("message missing header %q", h)
		}
	}

	// Blank line separates headers from the body; the HTML is carried verbatim.
	headerEnd := strings.Index(msg, "\r\n\r\n")
	if headerEnd == -1 {
		t.Fatal("missing blank line between headers and body")
	}
	body := msg[headerEnd+4:]
	if body != "<html><body><p>Hello</p></body></html>" {
		t.Errorf("body altered: %q", body)
	}
}

func TestHTML(t *testing.T) {
	if got := HTML(sampleTemplate()); got != "<html><body><p>Hello</p></body></html>" {
		t.Errorf("HTML export must be verbatim, got %q", got)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ext  string
		want string
	}{
		{name: "uuid id", id: "abc-123", ext: "eml", want: "phishing_template_abc-123.eml"},
		{name: "dotted extension", id: "abc-123", ext: ".html", want: "phishing_template_abc-123.html"},
		{name: "unsafe id sanitized", id: `x"/..\y`, ext: "eml", want: "phishing_template_x_.._y.eml"},
		{name: "empty id", id: "", ext: "eml", want: "phishing_template_unknown.eml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := sampleTemplate()
			tmpl.ID = tt.id
			if got := Filename(tmpl, tt.ext); got != tt.want {
				t.Errorf("Filename: got %q, want %q", got, tt.want)
			}
		})
	}
}
