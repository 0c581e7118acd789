// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pitch-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the research model identifier (default "sonar-pro").
	Model string `json:"model" yaml:"model"`

	// MaxTokens caps each research answer (default 2500).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature for research queries (default 0.1; factual recall, not prose).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenerationConfig holds settings for the pitch generation stage.
type GenerationConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the generation model identifier.
	Model string `json:"model" yaml:"model"`

	// MaxTokens caps the generated pitch (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// MaxRetries is the retry budget for rate-limited requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputFormat selects the rendering of a finished pitch.
type OutputFormat string

const (
	OutputMarkdown OutputFormat = "markdown"
	OutputJSON     OutputFormat = "json"
	OutputPDF      OutputFormat = "pdf"
)

// ServerConfig holds settings for serve mode.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// PitchesDir is where generated pitches are saved for the
	// recent-pitches listing (default "pitches").
	PitchesDir string `json:"pitches_dir" yaml:"pitches_dir"`
}

// FundProfile is the fund's own pitch material that generation personalises.
// Loaded from a YAML profile file; a placeholder is used when none exists.
type FundProfile struct {
	// Name is the fund name (e.g. "Bramble Ventures").
	Name string `json:"name" yaml:"name"`

	// Tagline is a one-line description of the fund.
	Tagline string `json:"tagline" yaml:"tagline"`

	// Themes are the fund's investment themes.
	Themes []string `json:"themes" yaml:"themes"`

	// CorePitch is the canonical pitch text the generator reframes per LP.
	CorePitch string `json:"core_pitch" yaml:"core_pitch"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Research   ResearchConfig   `json:"research" yaml:"research"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
