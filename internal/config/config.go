// Package config provides configuration loading and management for gemprobe.
package config

import "time"

// Defaults mirror the literals of the upstream connectivity test.
const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultPrompt    = "Write a short poem about sunshine and rain."
	DefaultAPIKeyEnv = "GOOGLE_AI_API_KEY"
)

// Config is the root configuration.
type Config struct {
	Model     string          `json:"model,omitempty"       mapstructure:"model"`
	Prompt    string          `json:"prompt,omitempty"      mapstructure:"prompt"`
	APIKeyEnv string          `json:"api_key_env,omitempty" mapstructure:"api_key_env"`
	Timeout   time.Duration   `json:"timeout,omitempty"     mapstructure:"timeout"`
	Retention RetentionPolicy `json:"retention,omitempty"   mapstructure:"retention"`
}

// RetentionPolicy defines how many old checks to keep.
type RetentionPolicy struct {
	KeepLast int `json:"keep_last,omitempty" mapstructure:"keep_last"`
	KeepDays int `json:"keep_days,omitempty" mapstructure:"keep_days"`
}

// ApplyDefaults fills unset fields. A zero timeout is left alone: it means
// the client library default applies.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = DefaultAPIKeyEnv
	}
}
