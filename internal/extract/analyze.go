// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// TrainingDisclaimer is the literal substring every generated email must
// carry. The safety check looks for it and the fallback synthesizer embeds it.
const TrainingDisclaimer = "For training only"

var hrefPattern = regexp.MustCompile(`(?i)href=["']([^"']+)["']`)

// fakeURLMarkers are the substrings that mark a link as intentionally fake.
var fakeURLMarkers = []string{"fake-", "phishing-", "test-", "training-"}

// realCompanyDomains is a basic blocklist of real domains that must never
// appear in training material.
var realCompanyDomains = []string{
	"microsoft.com", "google.com", "amazon.com", "apple.com", "facebook.com",
}

// SafetyReport is the outcome of the content safety check. Issues are
// findings, not rejections: callers log them and keep the template.
type SafetyReport struct {
	Safe   bool     `json:"safe"`
	Issues []string `json:"issues,omitempty"`
}

// CheckSafety runs the training-safety heuristics over generated HTML:
// the disclaimer must be present, every link must carry a fake-URL marker,
// and no real company domain may appear. All checks are independent.
func CheckSafety(htmlContent string) SafetyReport {
	var issues []string

	if !strings.Contains(htmlContent, TrainingDisclaimer) {
		issues = append(issues, "missing training disclaimer")
	}

	for _, m := range hrefPattern.FindAllStringSubmatch(htmlContent, -1) {
		url := m[1]
		lower := strings.ToLower(url)
		fake := false
		for _, marker := range fakeURLMarkers {
			if strings.Contains(lower, marker) {
				fake = true
				break
			}
		}
		if !fake {
			issues = append(issues, fmt.Sprintf("contains potentially real URL: %s", url))
		}
	}

	lower := strings.ToLower(htmlContent)
	for _, domain := range realCompanyDomains {
		if strings.Contains(lower, domain) {
			issues = append(issues, fmt.Sprintf("contains reference to real company: %s", domain))
		}
	}

	return SafetyReport{Safe: len(issues) == 0, Issues: issues}
}

// WordCount counts the words in an HTML document after stripping tags and
// collapsing whitespace.
func WordCount(htmlContent string) int {
	text := tagPattern.ReplaceAllString(htmlContent, " ")
	return len(strings.Fields(text))
}

// Indicators counts common phishing signals in generated content. Used for
// reporting only; nothing is blocked on these counts.
type Indicators struct {
	UrgencyWords     int `json:"urgency_words"`
	SuspiciousLinks  int `json:"suspicious_links"`
	AuthorityClaims  int `json:"authority_claims"`
	ScarcityLanguage int `json:"scarcity_language"`
}

var (
	urgencyWords   = []string{"urgent", "immediate", "asap", "expires", "deadline", "limited time"}
	authorityWords = []string{"security", "official", "verify", "confirm", "validate"}
	scarcityWords  = []string{"limited", "exclusive", "only", "last chance", "expires"}
)

// AnalyzeIndicators tallies urgency, authority, and scarcity vocabulary plus
// intentionally fake links in the given HTML.
func AnalyzeIndicators(htmlContent string) Indicators {
	var ind Indicators
	lower := strings.ToLower(htmlContent)

	for _, w := range urgencyWords {
		if strings.Contains(lower, w) {
			ind.UrgencyWords++
		}
	}
	for _, w := range authorityWords {
		if strings.Contains(lower, w) {
			ind.AuthorityClaims++
		}
	}
	for _, w := range scarcityWords {
		if strings.Contains(lower, w) {
			ind.ScarcityLanguage++
		}
	}

	for _, m := range hrefPattern.FindAllStringSubmatch(htmlContent, -1) {
		link := strings.ToLower(m[1])
		if strings.Contains(link, "fake-") || strings.Contains(link, "phishing-") {
			ind.SuspiciousLinks++
		}
	}

	return ind
}
