// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// EmailTemplate is one generated phishing-email artifact. ID and CreatedAt
// are fixed at creation; regeneration always produces a fresh template with
// a new ID rather than mutating an existing one.
type EmailTemplate struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email"`
	HTMLContent    string    `json:"html_content"`
	ScenarioType   string    `json:"scenario_type"`
	TargetIndustry string    `json:"target_industry"`
	UrgencyLevel   string    `json:"urgency_level"`
	ToneStyle      string    `json:"tone_style"`
	Language       string    `json:"language"`
	PhishingTactic string    `json:"phishing_tactic,omitempty"`
	AdvancedMode   bool      `json:"advanced_mode"`
	CreatedAt      time.Time `json:"created_at"`
	GenerationTime float64   `json:"generation_time"` // seconds
	WordCount      int       `json:"word_count"`
}

// GenerationResult is the outcome of one generation attempt. Template is set
// on success, Error on failure.
type GenerationResult struct {
	Success        bool           `json:"success"`
	Template       *EmailTemplate `json:"template,omitempty"`
	Error          string         `json:"error,omitempty"`
	GenerationTime float64        `json:"generation_time"`
}

// RequestSnapshot is the string form of a GenerateRequest as recorded in
// history entries.
type RequestSnapshot struct {
	ScenarioType   string `json:"scenario_type"`
	TargetIndustry string `json:"target_industry"`
	UrgencyLevel   string `json:"urgency_level"`
	ToneStyle      string `json:"tone_style"`
	Language       string `json:"language"`
	PhishingTactic string `json:"phishing_tactic,omitempty"`
	AdvancedMode   bool   `json:"advanced_mode"`
}

// Snapshot captures the request's fields as plain strings for the history log.
func (r GenerateRequest) Snapshot() RequestSnapshot {
	return RequestSnapshot{
		ScenarioType:   string(r.Scenario),
		TargetIndustry: string(r.Industry),
		UrgencyLevel:   string(r.Urgency),
		ToneStyle:      string(r.Tone),
		Language:       string(r.Language),
		PhishingTactic: string(r.Tactic),
		AdvancedMode:   r.Advanced,
	}
}

// HistoryEntry is one append-only record of a generation attempt.
type HistoryEntry struct {
	Timestamp      time.Time       `json:"timestamp"`
	Request        RequestSnapshot `json:"request"`
	TemplateID     string          `json:"template_id,omitempty"`
	Success        bool            `json:"success"`
	Error          string          `json:"error,omitempty"`
	GenerationTime float64         `json:"generation_time"`
}

// TacticInfo describes a phishing tactic for the API catalogue.
type TacticInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RiskLevel   string `json:"risk_level"`
}

// DefaultTactics returns the catalogue of supported phishing tactics.
func DefaultTactics() map[PhishingTactic]TacticInfo {
	return map[PhishingTactic]TacticInfo{
		TacticCredentialHarvesting: {
			Name:        "Credential Harvesting",
			Description: "Tricks users into entering login credentials on fake websites",
			RiskLevel:   "High",
		},
		TacticInvoiceFraud: {
			Name:        "Invoice Fraud",
			Description: "False billing or payment requests to steal money or information",
			RiskLevel:   "High",
		},
		TacticAccountTakeover: {
			Name:        "Account Takeover",
			Description: "Claims of suspicious account activity requiring verification",
			RiskLevel:   "Medium",
		},
		TacticPrizeScam: {
			Name:        "Prize/Lottery Scam",
			Description: "False prize notifications to gather personal information",
			RiskLevel:   "Medium",
		},
		TacticTechSupport: {
			Name:        "Tech Support Scam",
			Description: "False technical issues requiring immediate action",
			RiskLevel:   "Medium",
		},
		TacticExecutiveImpersonation: {
			Name:        "Executive Impersonation",
			Description: "Impersonating company executives to request sensitive actions",
			RiskLevel:   "High",
		},
	}
}

// SystemStats aggregates generation activity. It is always computed on
// demand from the store and history, never cached.
type SystemStats struct {
	TotalTemplates        int                           `json:"total_templates"`
	SuccessfulGenerations int                           `json:"successful_generations"`
	FailedGenerations     int                           `json:"failed_generations"`
	AverageGenerationTime float64                       `json:"average_generation_time"`
	PopularScenarios      map[string]int                `json:"popular_scenarios"`
	PopularIndustries     map[string]int                `json:"popular_industries"`
	SupportedLanguages    []string                      `json:"supported_languages"`
	AvailableTactics      map[PhishingTactic]TacticInfo `json:"available_tactics"`
}
