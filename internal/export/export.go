// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export serializes templates into downloadable artifacts.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"phishforge/internal/models"
)

// EML renders a template as an RFC 5322 message with an HTML body. The body
// is carried verbatim; only headers are added.
func EML(t models.EmailTemplate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", t.SenderName, t.SenderEmail)
	fmt.Fprintf(&b, "Subject: %s\r\n", t.Subject)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(t.HTMLContent)
	return b.String()
}

// HTML returns the raw HTML document of a template.
func HTML(t models.EmailTemplate) string {
	return t.HTMLContent
}

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Filename builds the download filename for one export format, always
// phishing_template_{id}.{ext}. Ids are UUIDs today; sanitization keeps the
// name header-safe if that ever changes.
func Filename(t models.EmailTemplate, ext string) string {
	id := strings.Trim(unsafeFilename.ReplaceAllString(t.ID, "_"), "_")
	if id == "" {
		id = "unknown"
	}
	return "phishing_template_" + id + "." + strings.TrimPrefix(ext, ".")
}
