// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the request, template, and history types shared
// across the phishforge services, together with the closed enumerations
// a generation request is built from.
package models

import (
	"fmt"
	"strings"
)

// ScenarioType is the phishing scenario a template is built around.
type ScenarioType string

const (
	ScenarioPasswordReset        ScenarioType = "Password Reset"
	ScenarioInvoiceOverdue       ScenarioType = "Invoice Overdue"
	ScenarioAccountLock          ScenarioType = "Account Lock"
	ScenarioPrizeNotification    ScenarioType = "Prize Notification"
	ScenarioUrgentDocumentReview ScenarioType = "Urgent Document Review"
	ScenarioSecurityAlert        ScenarioType = "Security Alert"
	ScenarioSystemMaintenance    ScenarioType = "System Maintenance"
	ScenarioPaymentFailed        ScenarioType = "Payment Failed"
)

// TargetIndustry is the industry or brand category the email mimics.
type TargetIndustry string

const (
	IndustryBanking         TargetIndustry = "Banking"
	IndustryOnlineRetail    TargetIndustry = "Online Retail"
	IndustryCloudService    TargetIndustry = "Cloud Service"
	IndustrySocialMedia     TargetIndustry = "Social Media"
	IndustryShippingCompany TargetIndustry = "Shipping Company"
	IndustryHealthcare      TargetIndustry = "Healthcare"
	IndustryGovernment      TargetIndustry = "Government"
	IndustryEducation       TargetIndustry = "Education"
	IndustryTechnology      TargetIndustry = "Technology"
	IndustryInsurance       TargetIndustry = "Insurance"
	IndustryRetail          TargetIndustry = "Retail"
)

// UrgencyLevel controls how much time pressure the email applies.
type UrgencyLevel string

const (
	UrgencyNormal UrgencyLevel = "Normal"
	UrgencyHigh   UrgencyLevel = "High"
)

// ToneStyle controls the register of the email copy.
type ToneStyle string

const (
	ToneFormal      ToneStyle = "Formal"
	ToneCasual      ToneStyle = "Casual"
	ToneUrgent      ToneStyle = "Urgent"
	ToneInformative ToneStyle = "Informative"
)

// Language selects the language the email is written in.
type Language string

const (
	LanguageEnglish  Language = "English"
	LanguageSpanish  Language = "Spanish"
	LanguageFrench   Language = "French"
	LanguageGerman   Language = "German"
	LanguageChinese  Language = "Chinese"
	LanguageJapanese Language = "Japanese"
)

// PhishingTactic names the social-engineering technique the email leans on.
// The empty value means "no tactic selected".
type PhishingTactic string

const (
	TacticCredentialHarvesting   PhishingTactic = "credential_harvesting"
	TacticInvoiceFraud           PhishingTactic = "invoice_fraud"
	TacticAccountTakeover        PhishingTactic = "account_takeover"
	TacticPrizeScam              PhishingTactic = "prize_scam"
	TacticTechSupport            PhishingTactic = "tech_support"
	TacticExecutiveImpersonation PhishingTactic = "executive_impersonation"
)

// Title returns the tactic in human-readable form, e.g.
// "credential_harvesting" becomes "Credential Harvesting".
func (t PhishingTactic) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Scenarios lists every valid scenario type.
func Scenarios() []ScenarioType {
	return []ScenarioType{
		ScenarioPasswordReset, ScenarioInvoiceOverdue, ScenarioAccountLock,
		ScenarioPrizeNotification, ScenarioUrgentDocumentReview,
		ScenarioSecurityAlert, ScenarioSystemMaintenance, ScenarioPaymentFailed,
	}
}

// Industries lists every valid target industry.
func Industries() []TargetIndustry {
	return []TargetIndustry{
		IndustryBanking, IndustryOnlineRetail, IndustryCloudService,
		IndustrySocialMedia, IndustryShippingCompany, IndustryHealthcare,
		IndustryGovernment, IndustryEducation, IndustryTechnology,
		IndustryInsurance, IndustryRetail,
	}
}

// Languages lists every supported language.
func Languages() []Language {
	return []Language{
		LanguageEnglish, LanguageSpanish, LanguageFrench,
		LanguageGerman, LanguageChinese, LanguageJapanese,
	}
}

// Tactics lists every valid phishing tactic.
func Tactics() []PhishingTactic {
	return []PhishingTactic{
		TacticCredentialHarvesting, TacticInvoiceFraud, TacticAccountTakeover,
		TacticPrizeScam, TacticTechSupport, TacticExecutiveImpersonation,
	}
}

// ParseScenarioType validates a scenario string against the closed set.
func ParseScenarioType(s string) (ScenarioType, error) {
	for _, v := range Scenarios() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown scenario type %q", s)
}

// ParseTargetIndustry validates an industry string against the closed set.
func ParseTargetIndustry(s string) (TargetIndustry, error) {
	for _, v := range Industries() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown target industry %q", s)
}

// ParseUrgencyLevel validates an urgency string against the closed set.
func ParseUrgencyLevel(s string) (UrgencyLevel, error) {
	switch UrgencyLevel(s) {
	case UrgencyNormal, UrgencyHigh:
		return UrgencyLevel(s), nil
	}
	return "", fmt.Errorf("unknown urgency level %q", s)
}

// ParseToneStyle validates a tone string against the closed set.
func ParseToneStyle(s string) (ToneStyle, error) {
	switch ToneStyle(s) {
	case ToneFormal, ToneCasual, ToneUrgent, ToneInformative:
		return ToneStyle(s), nil
	}
	return "", fmt.Errorf("unknown tone style %q", s)
}

// ParseLanguage validates a language string against the closed set.
func ParseLanguage(s string) (Language, error) {
	for _, v := range Languages() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// ParsePhishingTactic validates a tactic string against the closed set.
func ParsePhishingTactic(s string) (PhishingTactic, error) {
	for _, v := range Tactics() {
		if s == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown phishing tactic %q", s)
}
