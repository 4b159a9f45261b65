// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface to the text-generation providers
// used for template generation (Anthropic Claude, OpenAI). Each provider
// handles its own HTTP communication and tries a tiered list of model
// candidates, fastest first; the Registry selects the active provider by
// name. The generation pipeline degrades to local synthesis when no
// provider is available, so a registry with no configured providers is a
// valid runtime state.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrUnavailable is returned when generation is requested but no provider
// is configured. Callers fall back to local synthesis on this error.
var ErrUnavailable = errors.New("ai: no text-generation provider available")

// Provider is a text-generation backend. Generate sends one free-text
// prompt and returns one free-text completion.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider identifier (e.g., "claude", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
// Models is the ordered candidate list tried per request, fastest/cheapest
// first; when empty the provider's built-in defaults are used.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Models  []string
}

// Registry manages available providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		}
	}

	return r
}

// Generate calls the active provider. Returns ErrUnavailable when no
// provider is configured under the active name.
func (r *Registry) Generate(ctx context.Context, prompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, prompt)
}

// Active returns the currently active provider, or ErrUnavailable.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("%w (active %q)", ErrUnavailable, r.active)
	}
	return p, nil
}

// Ready reports whether the active provider is configured. The generation
// pipeline checks this before building a prompt so an unconfigured service
// skips straight to fallback synthesis.
func (r *Registry) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[r.active]
	return ok
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows
// injecting custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}
