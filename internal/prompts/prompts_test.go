// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompts

import (
	"strings"
	"testing"
)

func validParams() Params {
	return Params{
		Language: "English",
		Urgency:  "High",
		Tone:     "Formal",
		Tactic:   "credential_harvesting",
		Industry: "Banking",
		Scenario: "Password Reset",
	}
}

func TestBuild_SubstitutesAllPlaceholders(t *testing.T) {
	p := validParams()
	prompt, err := Build(p, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, want := range []string{"English", "High", "Formal", "credential_harvesting", "Banking", "Password Reset"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing substituted value %q", want)
		}
	}
	if strings.Contains(prompt, "{") && strings.Contains(prompt, "}") {
		for _, ph := range []string{"{language}", "{urgency_level}", "{tone_style}", "{phishing_tactic}", "{target_industry}", "{scenario_type}"} {
			if strings.Contains(prompt, ph) {
				t.Errorf("unsubstituted placeholder %q left in prompt", ph)
			}
		}
	}
}

func TestBuild_AdvancedTemplate(t *testing.T) {
	base, err := Build(validParams(), false)
	if err != nil {
		t.Fatalf("Build base: %v", err)
	}
	advanced, err := Build(validParams(), true)
	if err != nil {
		t.Fatalf("Build advanced: %v", err)
	}

	if base == advanced {
		t.Error("advanced prompt should differ from the base prompt")
	}
	if !strings.Contains(advanced, "advanced") {
		t.Error("advanced prompt should describe advanced training")
	}
}

func TestBuild_IndustryGuidance(t *testing.T) {
	p := validParams()
	prompt, err := Build(p, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(prompt, "Industry-Specific Guidance for Banking") {
		t.Error("expected Banking guidance section")
	}

	// Industries without dedicated guidance get no extra section.
	p.Industry = "Shipping Company"
	prompt, err = Build(p, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if strings.Contains(prompt, "Industry-Specific Guidance") {
		t.Error("unexpected guidance section for industry without one")
	}
}

func TestBuild_MissingParams(t *testing.T) {
	p := validParams()
	p.Tactic = ""

	_, err := Build(p, false)
	if err == nil {
		t.Fatal("Build should reject missing parameters")
	}
	if !strings.Contains(err.Error(), "missing required prompt parameters") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "phishing_tactic") {
		t.Errorf("error should name the missing field, got: %v", err)
	}
}
