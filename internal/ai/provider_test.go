// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// TestClaudeLive tests the Claude provider against the real API.
// Skipped if ANTHROPIC_API_KEY is not set.
func TestClaudeLive(t *testing.T) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		t.Skip("ANTHROPIC_API_KEY not set")
	}

	reg := NewRegistry("claude", map[string]ProviderConfig{
		"claude": {APIKey: key},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := reg.Generate(ctx, "Say 'API Test Successful'")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result == "" {
		t.Fatal("Generate returned empty string")
	}

	t.Logf("Claude response: %s", result)
}

// TestOpenAILive tests the OpenAI provider against the real API.
// Skipped if OPENAI_API_KEY is not set.
func TestOpenAILive(t *testing.T) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		t.Skip("OPENAI_API_KEY not set")
	}

	reg := NewRegistry("openai", map[string]ProviderConfig{
		"openai": {APIKey: key},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := reg.Generate(ctx, "Say 'API Test Successful'")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result == "" {
		t.Fatal("Generate returned empty string")
	}

	t.Logf("OpenAI response: %s", result)
}

// TestRegistryBasics tests provider selection without API calls.
func TestRegistryBasics(t *testing.T) {
	reg := NewRegistry("claude", map[string]ProviderConfig{
		"claude": {APIKey: "test-key"},
		"openai": {APIKey: ""}, // No key — should be skipped.
	})

	if reg.ActiveName() != "claude" {
		t.Errorf("expected active=claude, got %s", reg.ActiveName())
	}
	if !reg.Ready() {
		t.Error("registry with a configured active provider should be ready")
	}

	available := reg.Available()
	if len(available) != 1 || available[0] != "claude" {
		t.Errorf("expected only claude available, got %v", available)
	}

	if err := reg.SetActive("openai"); err == nil {
		t.Error("SetActive(openai) should fail (no API key)")
	}
	if reg.ActiveName() != "claude" {
		t.Errorf("failed switch must not change the active provider, got %s", reg.ActiveName())
	}
}

func TestRegistryUnavailable(t *testing.T) {
	reg := NewRegistry("claude", nil)

	if reg.Ready() {
		t.Error("empty registry should not be ready")
	}

	_, err := reg.Generate(context.Background(), "hello")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

type fixedProvider struct{ out string }

func (p *fixedProvider) Name() string { return "fixed" }

func (p *fixedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.out, nil
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry("fixed", nil)
	reg.Register("fixed", &fixedProvider{out: "hello"})

	got, err := reg.Generate(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}
