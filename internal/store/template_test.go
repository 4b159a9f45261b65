// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"testing"
	"time"

	"phishforge/internal/models"
)

func testTemplate(id string, created time.Time) models.EmailTemplate {
	return models.EmailTemplate{
		ID:             id,
		Subject:        "Subject " + id,
		SenderName:     "Security Team",
		SenderEmail:    "security@fake-test.com",
		HTMLContent:    "<html><body>x</body></html>",
		ScenarioType:   "Password Reset",
		TargetIndustry: "Banking",
		CreatedAt:      created,
	}
}

func TestPutGetDelete(t *testing.T) {
	s := NewTemplateStore()

	tmpl := testTemplate("a", time.Now())
	s.Put(tmpl)

	got, ok := s.Get("a")
	if !ok {
		t.Fatal("expected template to exist")
	}
	if got.Subject != tmpl.Subject {
		t.Errorf("subject: got %q, want %q", got.Subject, tmpl.Subject)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("unknown id should miss")
	}

	if !s.Delete("a") {
		t.Error("delete of existing template should report true")
	}
	if s.Delete("a") {
		t.Error("second delete should report false")
	}
	if _, ok := s.Get("a"); ok {
		t.Error("template should be gone after delete")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := NewTemplateStore()
	base := time.Now()

	s.Put(testTemplate("old", base.Add(-2*time.Hour)))
	s.Put(testTemplate("mid", base.Add(-1*time.Hour)))
	s.Put(testTemplate("new", base))

	items := s.List()
	if len(items) != 3 {
		t.Fatalf("len: got %d, want 3", len(items))
	}
	wantOrder := []string{"new", "mid", "old"}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("position %d: got %q, want %q", i, items[i].ID, want)
		}
	}

	if s.Count() != 3 {
		t.Errorf("Count: got %d, want 3", s.Count())
	}
}

func TestHistoryCapFIFO(t *testing.T) {
	s := NewTemplateStore()

	for i := 0; i < maxHistory+5; i++ {
		s.AppendHistory(models.HistoryEntry{
			Timestamp:  time.Now(),
			TemplateID: fmt.Sprintf("t%d", i),
			Success:    true,
		})
	}

	history := s.History()
	if len(history) != maxHistory {
		t.Fatalf("history length: got %d, want %d", len(history), maxHistory)
	}

	// Oldest entries evicted first: the log must start at entry 5.
	if history[0].TemplateID != "t5" {
		t.Errorf("first entry: got %q, want t5", history[0].TemplateID)
	}
	if history[len(history)-1].TemplateID != fmt.Sprintf("t%d", maxHistory+4) {
		t.Errorf("last entry: got %q", history[len(history)-1].TemplateID)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	s := NewTemplateStore()
	s.AppendHistory(models.HistoryEntry{TemplateID: "x", Success: true})

	h := s.History()
	h[0].TemplateID = "mutated"

	if s.History()[0].TemplateID != "x" {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestStats(t *testing.T) {
	s := NewTemplateStore()

	s.Put(testTemplate("a", time.Now()))
	s.Put(testTemplate("b", time.Now()))

	entries := []models.HistoryEntry{
		{Success: true, GenerationTime: 2.0, Request: models.RequestSnapshot{ScenarioType: "Password Reset", TargetIndustry: "Banking"}},
		{Success: true, GenerationTime: 4.0, Request: models.RequestSnapshot{ScenarioType: "Password Reset", TargetIndustry: "Healthcare"}},
		{Success: false, Error: "provider down", Request: models.RequestSnapshot{ScenarioType: "Security Alert", TargetIndustry: "Banking"}},
	}
	for _, e := range entries {
		s.AppendHistory(e)
	}

	stats := s.Stats()
	if stats.TotalTemplates != 2 {
		t.Errorf("total templates: got %d, want 2", stats.TotalTemplates)
	}
	if stats.SuccessfulGenerations != 2 {
		t.Errorf("successful: got %d, want 2", stats.SuccessfulGenerations)
	}
	if stats.FailedGenerations != 1 {
		t.Errorf("failed: got %d, want 1", stats.FailedGenerations)
	}
	if stats.AverageGenerationTime != 3.0 {
		t.Errorf("average time: got %v, want 3.0", stats.AverageGenerationTime)
	}
	if stats.PopularScenarios["Password Reset"] != 2 {
		t.Errorf("popular scenarios: %v", stats.PopularScenarios)
	}
	if stats.PopularIndustries["Banking"] != 2 {
		t.Errorf("popular industries: %v", stats.PopularIndustries)
	}
	if len(stats.SupportedLanguages) != len(models.Languages()) {
		t.Errorf("supported languages: got %d", len(stats.SupportedLanguages))
	}
	if len(stats.AvailableTactics) != len(models.Tactics()) {
		t.Errorf("available tactics: got %d", len(stats.AvailableTactics))
	}
}

func TestStatsTopN(t *testing.T) {
	s := NewTemplateStore()

	// 12 distinct scenario labels; only the 10 most frequent survive.
	for i := 0; i < 12; i++ {
		label := fmt.Sprintf("scenario-%d", i)
		for j := 0; j <= i; j++ {
			s.AppendHistory(models.HistoryEntry{
				Success: true,
				Request: models.RequestSnapshot{ScenarioType: label, TargetIndustry: "Banking"},
			})
		}
	}

	stats := s.Stats()
	if len(stats.PopularScenarios) != 10 {
		t.Fatalf("popular scenarios: got %d entries, want 10", len(stats.PopularScenarios))
	}
	if _, ok := stats.PopularScenarios["scenario-0"]; ok {
		t.Error("least frequent scenario should have been dropped")
	}
	if stats.PopularScenarios["scenario-11"] != 12 {
		t.Errorf("most frequent scenario count: got %d, want 12", stats.PopularScenarios["scenario-11"])
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewTemplateStore()
	done := make(chan struct{})

	for w := 0; w < 4; w++ {
		go func(w int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				s.Put(testTemplate(id, time.Now()))
				s.Get(id)
				s.AppendHistory(models.HistoryEntry{TemplateID: id, Success: true})
			}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	if s.Count() != 400 {
		t.Errorf("count after concurrent writes: got %d, want 400", s.Count())
	}
	if len(s.History()) != 400 {
		t.Errorf("history after concurrent writes: got %d, want 400", len(s.History()))
	}
}
