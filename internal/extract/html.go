// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extract recovers structured email data from free-form model
// output. The model is asked to return a code-fenced HTML document with the
// sender declared in an HTML comment, but responses drift, so every function
// here works through ordered fallbacks and fixed defaults rather than
// failing. This is not a general HTML parser; it targets exactly the output
// conventions the prompt asks for.
package extract

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoHTML is returned when a response contains neither a fenced HTML block
// nor recognizable document markers. Callers treat it as a signal to fall
// back to local synthesis, not as a fatal error.
var ErrNoHTML = errors.New("no html document in response")

// fencePatterns are tried in order; the first match anywhere in the text
// wins. The bare-fence variants only accept a full DOCTYPE...</html> span so
// that fenced prose is not mistaken for a document.
var fencePatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)```html\n(.*?)\n```"),
	regexp.MustCompile("(?s)```html(.*?)```"),
	regexp.MustCompile("(?s)```\n(<!DOCTYPE.*?</html>)\n```"),
	regexp.MustCompile("(?s)```(<!DOCTYPE.*?</html>)```"),
}

// HTML extracts the embedded HTML document from a raw model response.
// It first tries the fenced-code-block patterns, then falls back to scanning
// for bare document markers: the earliest <!DOCTYPE/<html/<HTML occurrence
// opens the document and the last </html>/</HTML> closes it (inclusive).
// Returns ErrNoHTML when neither method finds a document.
func HTML(text string) (string, error) {
	for _, p := range fencePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), nil
		}
	}

	if !strings.Contains(text, "<!DOCTYPE") && !strings.Contains(strings.ToLower(text), "<html") {
		return "", ErrNoHTML
	}

	start := -1
	for _, marker := range []string{"<!DOCTYPE", "<html", "<HTML"} {
		if pos := strings.Index(text, marker); pos != -1 && (start == -1 || pos < start) {
			start = pos
		}
	}
	if start == -1 {
		return "", ErrNoHTML
	}

	end := -1
	for _, marker := range []string{"</html>", "</HTML>"} {
		if pos := strings.LastIndex(text, marker); pos != -1 {
			end = pos + len(marker)
			break
		}
	}
	if end == -1 {
		return "", ErrNoHTML
	}

	return strings.TrimSpace(text[start:end]), nil
}
