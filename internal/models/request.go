// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "fmt"

// GenerateRequest is a validated, immutable request for one template
// generation. Build it through NewGenerateRequest so every field is known
// to belong to its closed enumeration.
type GenerateRequest struct {
	Scenario ScenarioType   `json:"scenario_type"`
	Industry TargetIndustry `json:"target_industry"`
	Urgency  UrgencyLevel   `json:"urgency_level"`
	Tone     ToneStyle      `json:"tone_style"`
	Language Language       `json:"language"`
	Tactic   PhishingTactic `json:"phishing_tactic,omitempty"`
	Advanced bool           `json:"advanced_mode"`
}

// NewGenerateRequest validates the raw string fields of an inbound request
// and builds a GenerateRequest. Scenario and industry are mandatory; urgency,
// tone, and language fall back to Normal/Formal/English when empty; tactic is
// optional and left empty when not supplied.
func NewGenerateRequest(scenario, industry, urgency, tone, language, tactic string, advanced bool) (GenerateRequest, error) {
	var req GenerateRequest
	var err error

	if scenario == "" || industry == "" {
		return req, fmt.Errorf("scenario type and target industry are required")
	}
	if req.Scenario, err = ParseScenarioType(scenario); err != nil {
		return req, err
	}
	if req.Industry, err = ParseTargetIndustry(industry); err != nil {
		return req, err
	}

	if urgency == "" {
		urgency = string(UrgencyNormal)
	}
	if req.Urgency, err = ParseUrgencyLevel(urgency); err != nil {
		return req, err
	}

	if tone == "" {
		tone = string(ToneFormal)
	}
	if req.Tone, err = ParseToneStyle(tone); err != nil {
		return req, err
	}

	if language == "" {
		language = string(LanguageEnglish)
	}
	if req.Language, err = ParseLanguage(language); err != nil {
		return req, err
	}

	if tactic != "" {
		if req.Tactic, err = ParsePhishingTactic(tactic); err != nil {
			return req, err
		}
	}

	req.Advanced = advanced
	return req, nil
}

// TacticOrDefault returns the selected tactic, or credential harvesting when
// no tactic was chosen.
func (r GenerateRequest) TacticOrDefault() PhishingTactic {
	if r.Tactic == "" {
		return TacticCredentialHarvesting
	}
	return r.Tactic
}
