// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the generated templates and the generation history.
// The TemplateStore is the single owner of both structures: templates live
// in a mutex-guarded map keyed by id, history is an append-only log capped
// at maxHistory entries with oldest-first eviction. Statistics are derived
// on demand and never cached.
package store

import (
	"sort"
	"sync"

	"phishforge/internal/models"
)

// maxHistory bounds the generation history log. Oldest entries are dropped
// first once the cap is exceeded.
const maxHistory = 1000

// TemplateStore is the in-memory template and history repository.
// All methods are safe for concurrent use.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]models.EmailTemplate
	history   []models.HistoryEntry
}

// NewTemplateStore creates an empty store.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{
		templates: make(map[string]models.EmailTemplate),
	}
}

// Put inserts a template under its id.
func (s *TemplateStore) Put(t models.EmailTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.ID] = t
}

// Get retrieves a template by id.
func (s *TemplateStore) Get(id string) (models.EmailTemplate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[id]
	return t, ok
}

// Delete removes a template by id, reporting whether it existed.
func (s *TemplateStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[id]; !ok {
		return false
	}
	delete(s.templates, id)
	return true
}

// List returns all templates, newest first.
func (s *TemplateStore) List() []models.EmailTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.EmailTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// Count returns the number of stored templates.
func (s *TemplateStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// AppendHistory records a generation attempt, evicting the oldest entries
// once the log exceeds its cap.
func (s *TemplateStore) AppendHistory(e models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, e)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// History returns a copy of the generation history, oldest first.
func (s *TemplateStore) History() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Stats computes system statistics from the current store contents and
// history log.
func (s *TemplateStore) Stats() models.SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.SystemStats{
		TotalTemplates:   len(s.templates),
		AvailableTactics: models.DefaultTactics(),
	}
	for _, l := range models.Languages() {
		stats.SupportedLanguages = append(stats.SupportedLanguages, string(l))
	}

	scenarios := make(map[string]int)
	industries := make(map[string]int)
	var successTotal float64
	var successTimed int

	for _, e := range s.history {
		if e.Success {
			stats.SuccessfulGenerations++
			if e.GenerationTime > 0 {
				successTotal += e.GenerationTime
				successTimed++
			}
		} else {
			stats.FailedGenerations++
		}
		scenarios[e.Request.ScenarioType]++
		industries[e.Request.TargetIndustry]++
	}

	if successTimed > 0 {
		stats.AverageGenerationTime = successTotal / float64(successTimed)
	}
	stats.PopularScenarios = topN(scenarios, 10)
	stats.PopularIndustries = topN(industries, 10)

	return stats
}

// topN keeps the n highest counts from a frequency map.
func topN(counts map[string]int, n int) map[string]int {
	type kv struct {
		key   string
		count int
	}
	pairs := make([]kv, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, kv{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].key < pairs[j].key
	})
	if len(pairs) > n {
		pairs = pairs[:n]
	}

	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		out[p.key] = p.count
	}
	return out
}
