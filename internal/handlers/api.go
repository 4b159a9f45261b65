// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API for template generation and
// management. Handlers hold no business logic: validation lives in the
// models package and the generation pipeline in the generator service.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"phishforge/internal/ai"
	"phishforge/internal/cache"
	"phishforge/internal/export"
	"phishforge/internal/generator"
	"phishforge/internal/models"
	"phishforge/internal/store"
)

// API bundles the dependencies of all JSON endpoints.
type API struct {
	generator *generator.Service
	store     *store.TemplateStore
	exports   *cache.ExportCache
	providers *ai.Registry
}

// NewAPI creates the API handler set. exports may be nil when Valkey is not
// configured.
func NewAPI(gen *generator.Service, st *store.TemplateStore, exports *cache.ExportCache, providers *ai.Registry) *API {
	return &API{
		generator: gen,
		store:     st,
		exports:   exports,
		providers: providers,
	}
}

// generateBody is the JSON request body for generation endpoints.
type generateBody struct {
	ScenarioType   string `json:"scenario_type"`
	TargetIndustry string `json:"target_industry"`
	UrgencyLevel   string `json:"urgency_level"`
	ToneStyle      string `json:"tone_style"`
	Language       string `json:"language"`
	PhishingTactic string `json:"phishing_tactic"`
	AdvancedMode   bool   `json:"advanced_mode"`
}

// Generate handles POST /api/generate.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	req, err := models.NewGenerateRequest(
		body.ScenarioType,
		body.TargetIndustry,
		body.UrgencyLevel,
		body.ToneStyle,
		body.Language,
		body.PhishingTactic,
		body.AdvancedMode,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("generation request",
		"scenario", body.ScenarioType,
		"industry", body.TargetIndustry,
		"remote", r.RemoteAddr)

	result := a.generator.Generate(r.Context(), req)
	writeJSON(w, http.StatusOK, result)
}

// Regenerate handles POST /api/regenerate/{id}. The original template is
// kept; a successful regeneration stores a new one under a new id.
func (a *API) Regenerate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.store.Get(id); !ok {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}

	result := a.generator.Regenerate(r.Context(), id)
	writeJSON(w, http.StatusOK, result)
}

// ListTemplates handles GET /api/templates, newest first.
func (a *API) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.List())
}

// GetTemplate handles GET /api/templates/{id}.
func (a *API) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := a.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}
	writeJSON(w, http.StatusOK, tmpl)
}

// deleteResponse confirms a deletion.
type deleteResponse struct {
	Message   string `json:"message"`
	DeletedID string `json:"deleted_id"`
}

// DeleteTemplate handles DELETE /api/templates/{id}.
func (a *API) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.store.Delete(id) {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}

	a.exports.InvalidateTemplate(r.Context(), id)
	slog.Info("template deleted", "id", id)
	writeJSON(w, http.StatusOK, deleteResponse{
		Message:   "Template deleted successfully",
		DeletedID: id,
	})
}

// Preview handles GET /api/templates/{id}/preview, serving the raw HTML body
// for in-browser display.
func (a *API) Preview(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := a.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(tmpl.HTMLContent))
}

// Download handles GET /api/templates/{id}/download, serving the template as
// an .eml message.
func (a *API) Download(w http.ResponseWriter, r *http.Request) {
	a.serveExport(w, r, "eml", "message/rfc822", func(t models.EmailTemplate) []byte {
		return []byte(export.EML(t))
	})
}

// DownloadHTML handles GET /api/templates/{id}/download-html, serving the raw
// HTML body as a file attachment.
func (a *API) DownloadHTML(w http.ResponseWriter, r *http.Request) {
	a.serveExport(w, r, "html", "text/html; charset=utf-8", func(t models.EmailTemplate) []byte {
		return []byte(export.HTML(t))
	})
}

// serveExport renders (or fetches from cache) one export format of a template
// and writes it as an attachment.
func (a *API) serveExport(w http.ResponseWriter, r *http.Request, format, contentType string, render func(models.EmailTemplate) []byte) {
	id := chi.URLParam(r, "id")
	tmpl, ok := a.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Template not found")
		return
	}

	key := cache.Key(id, format)
	data, hit := a.exports.Get(r.Context(), key)
	if !hit {
		data = render(tmpl)
		a.exports.Set(r.Context(), key, data)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(tmpl, format)))
	w.Write(data)
}

// Tactics handles GET /api/tactics.
func (a *API) Tactics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.DefaultTactics())
}

// History handles GET /api/history, oldest first.
func (a *API) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.History())
}

// Stats handles GET /api/stats.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Stats())
}

// healthResponse is the GET /health payload.
type healthResponse struct {
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
	TemplatesCount    int       `json:"templates_count"`
	ProviderAvailable bool      `json:"provider_available"`
	ActiveProvider    string    `json:"active_provider,omitempty"`
}

// Health handles GET /health.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "healthy",
		Timestamp:         time.Now().UTC(),
		TemplatesCount:    a.store.Count(),
		ProviderAvailable: a.providers.Ready(),
		ActiveProvider:    a.providers.ActiveName(),
	})
}

// testResponse is the GET /api/test payload.
type testResponse struct {
	Status             string `json:"status"`
	ProviderConfigured bool   `json:"provider_configured"`
	TestResponse       string `json:"test_response,omitempty"`
	Error              string `json:"error,omitempty"`
}

// TestProvider handles GET /api/test: a connectivity probe that sends a tiny
// prompt through the active provider.
func (a *API) TestProvider(w http.ResponseWriter, r *http.Request) {
	if !a.providers.Ready() {
		writeJSON(w, http.StatusOK, testResponse{
			Status: "error",
			Error:  "No AI provider configured",
		})
		return
	}

	response, err := a.providers.Generate(r.Context(), "Say 'API Test Successful'")
	if err != nil {
		writeJSON(w, http.StatusOK, testResponse{
			Status:             "error",
			ProviderConfigured: true,
			Error:              err.Error(),
		})
		return
	}

	if len(response) > 100 {
		response = response[:100]
	}
	writeJSON(w, http.StatusOK, testResponse{
		Status:             "success",
		ProviderConfigured: true,
		TestResponse:       response,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
