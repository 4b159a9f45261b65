// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator orchestrates template generation: prompt construction,
// provider call, HTML extraction, fallback synthesis, component extraction,
// safety review, and persistence. Every attempt, successful or not, leaves
// exactly one history entry.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"phishforge/internal/ai"
	"phishforge/internal/extract"
	"phishforge/internal/models"
	"phishforge/internal/prompts"
	"phishforge/internal/store"
	"phishforge/internal/synth"
)

// Service generates phishing-email templates through the configured AI
// provider, falling back to local synthesis when the provider cannot
// deliver a usable document.
type Service struct {
	providers *ai.Registry
	store     *store.TemplateStore
	logger    *slog.Logger
	archive   Archiver
}

// Archiver receives a copy of every finished generation attempt. The Postgres
// audit archive implements it; a nil Archiver disables archiving.
type Archiver interface {
	Record(ctx context.Context, entry models.HistoryEntry)
}

// NewService wires a generation service. archive may be nil.
func NewService(providers *ai.Registry, st *store.TemplateStore, archive Archiver, logger *slog.Logger) *Service {
	return &Service{
		providers: providers,
		store:     st,
		archive:   archive,
		logger:    logger,
	}
}

// Generate runs one generation attempt for a validated request. Provider or
// extraction failures degrade to the synthesized fallback document and still
// count as success; only a request that cannot produce any document at all
// fails.
func (s *Service) Generate(ctx context.Context, req models.GenerateRequest) models.GenerationResult {
	start := time.Now()

	// Requests normally arrive through models.NewGenerateRequest; a hand-built
	// zero request must not slip through to the fallback synthesizer.
	if req.Scenario == "" || req.Industry == "" {
		return s.fail(ctx, req, fmt.Errorf("generate: scenario and industry are required"), start)
	}

	htmlContent, genErr := s.generateHTML(ctx, req)
	if genErr != nil {
		s.logger.Warn("provider generation failed, using fallback template",
			"scenario", string(req.Scenario), "error", genErr)
		var err error
		htmlContent, err = synth.Template(synth.Request{
			Scenario: string(req.Scenario),
			Industry: string(req.Industry),
			Urgency:  string(req.Urgency),
			Tone:     string(req.Tone),
		})
		if err != nil {
			return s.fail(ctx, req, fmt.Errorf("fallback synthesis: %w", err), start)
		}
	}

	components := extract.EmailComponents(htmlContent)

	if report := extract.CheckSafety(htmlContent); !report.Safe {
		s.logger.Warn("generated template failed safety review",
			"issues", strings.Join(report.Issues, "; "))
	}

	tmpl := models.EmailTemplate{
		ID:             uuid.NewString(),
		Subject:        components.Subject,
		SenderName:     components.SenderName,
		SenderEmail:    components.SenderEmail,
		HTMLContent:    htmlContent,
		ScenarioType:   string(req.Scenario),
		TargetIndustry: string(req.Industry),
		UrgencyLevel:   string(req.Urgency),
		ToneStyle:      string(req.Tone),
		Language:       string(req.Language),
		PhishingTactic: string(req.TacticOrDefault()),
		AdvancedMode:   req.Advanced,
		CreatedAt:      time.Now().UTC(),
		GenerationTime: time.Since(start).Seconds(),
		WordCount:      extract.WordCount(htmlContent),
	}

	s.store.Put(tmpl)
	s.record(ctx, models.HistoryEntry{
		Timestamp:      tmpl.CreatedAt,
		Request:        req.Snapshot(),
		TemplateID:     tmpl.ID,
		Success:        true,
		GenerationTime: tmpl.GenerationTime,
	})

	s.logger.Info("template generated",
		"id", tmpl.ID,
		"scenario", tmpl.ScenarioType,
		"industry", tmpl.TargetIndustry,
		"fallback", genErr != nil,
		"duration", tmpl.GenerationTime)

	return models.GenerationResult{
		Success:        true,
		Template:       &tmpl,
		GenerationTime: tmpl.GenerationTime,
	}
}

// Regenerate produces a fresh template from the parameters of a stored one.
// The original template is left untouched; an unknown id fails without
// touching the provider.
func (s *Service) Regenerate(ctx context.Context, id string) models.GenerationResult {
	start := time.Now()

	orig, ok := s.store.Get(id)
	if !ok {
		return s.fail(ctx, models.GenerateRequest{}, fmt.Errorf("template %s not found", id), start)
	}

	req, err := models.NewGenerateRequest(
		orig.ScenarioType,
		orig.TargetIndustry,
		orig.UrgencyLevel,
		orig.ToneStyle,
		orig.Language,
		orig.PhishingTactic,
		orig.AdvancedMode,
	)
	if err != nil {
		return s.fail(ctx, models.GenerateRequest{}, fmt.Errorf("stored template %s has invalid parameters: %w", id, err), start)
	}

	return s.Generate(ctx, req)
}

// generateHTML builds the prompt, calls the active provider, and extracts the
// HTML document from its response.
func (s *Service) generateHTML(ctx context.Context, req models.GenerateRequest) (string, error) {
	if !s.providers.Ready() {
		return "", ai.ErrUnavailable
	}

	prompt, err := prompts.Build(prompts.Params{
		Language: string(req.Language),
		Urgency:  string(req.Urgency),
		Tone:     string(req.Tone),
		Tactic:   req.TacticOrDefault().Title(),
		Industry: string(req.Industry),
		Scenario: string(req.Scenario),
	}, req.Advanced)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	response, err := s.providers.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("provider: %w", err)
	}

	htmlContent, err := extract.HTML(response)
	if err != nil {
		return "", fmt.Errorf("extract html: %w", err)
	}
	return htmlContent, nil
}

// fail records a failed attempt and returns its result.
func (s *Service) fail(ctx context.Context, req models.GenerateRequest, err error, start time.Time) models.GenerationResult {
	elapsed := time.Since(start).Seconds()
	s.record(ctx, models.HistoryEntry{
		Timestamp:      time.Now().UTC(),
		Request:        req.Snapshot(),
		Success:        false,
		Error:          err.Error(),
		GenerationTime: elapsed,
	})
	s.logger.Error("template generation failed", "error", err, "duration", elapsed)
	return models.GenerationResult{
		Success:        false,
		Error:          err.Error(),
		GenerationTime: elapsed,
	}
}

// record appends a history entry and forwards it to the archive when one is
// configured.
func (s *Service) record(ctx context.Context, entry models.HistoryEntry) {
	s.store.AppendHistory(entry)
	if s.archive != nil {
		s.archive.Record(ctx, entry)
	}
}
