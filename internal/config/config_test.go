package config

import (
	"testing"
	"time"
)

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Model != DefaultModel {
		t.Fatalf("model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if cfg.APIKeyEnv != DefaultAPIKeyEnv {
		t.Fatalf("api_key_env = %q, want %q", cfg.APIKeyEnv, DefaultAPIKeyEnv)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("timeout = %v, want 0 (client default)", cfg.Timeout)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Model:   "gemini-2.5-pro",
		Prompt:  "ping",
		Timeout: 30 * time.Second,
	}
	cfg.ApplyDefaults()

	if cfg.Model != "gemini-2.5-pro" {
		t.Fatalf("model = %q, want %q", cfg.Model, "gemini-2.5-pro")
	}
	if cfg.Prompt != "ping" {
		t.Fatalf("prompt = %q, want %q", cfg.Prompt, "ping")
	}
	if cfg.APIKeyEnv != DefaultAPIKeyEnv {
		t.Fatalf("api_key_env = %q, want %q", cfg.APIKeyEnv, DefaultAPIKeyEnv)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestValidateSettings_AcceptsFullSettings(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"model":       "gemini-2.5-flash",
		"prompt":      "Write a short poem about sunshine and rain.",
		"api_key_env": "GOOGLE_AI_API_KEY",
		"timeout":     "45s",
		"retention": map[string]any{
			"keep_last": 10,
			"keep_days": 7,
		},
	}

	if err := ValidateSettings(settings); err != nil {
		t.Fatalf("ValidateSettings returned error: %v", err)
	}
}

func TestValidateSettings_RejectsUnknownKey(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"model":  "gemini-2.5-flash",
		"modle":  "typo",
		"prompt": "ping",
	}

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("ValidateSettings returned nil error, want error")
	}
}

func TestValidateSettings_RejectsNegativeRetention(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"retention": map[string]any{
			"keep_last": -1,
		},
	}

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("ValidateSettings returned nil error, want error")
	}
}

func TestValidateSettings_RejectsEmptyModel(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"model": "",
	}

	if err := ValidateSettings(settings); err == nil {
		t.Fatal("ValidateSettings returned nil error, want error")
	}
}
