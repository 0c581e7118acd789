// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package main is the entry point for the pitch-engine CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bramblevc/pitch-engine/internal/fund"
	"github.com/bramblevc/pitch-engine/internal/pipeline"
	"github.com/bramblevc/pitch-engine/internal/pitch"
	"github.com/bramblevc/pitch-engine/internal/research"
	"github.com/bramblevc/pitch-engine/internal/secrets"
	"github.com/bramblevc/pitch-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// keyResolver is the credential chain built at startup: environment, .env,
// .secrets/, home dotfiles.
var keyResolver *secrets.Resolver

// rootCmd is the base command for the pitch-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "pitch-engine",
	Short: "Personalised LP pitch content for fundraising meetings",
	Long: `pitch-engine prepares personalised pitch content for LP meetings. It
researches the LP through the Perplexity API, generates tailored pitch
sections through the Claude API, and renders the result as markdown,
JSON, or PDF.

API keys are resolved from the environment, a .env file, a .secrets/
directory, or legacy home dotfiles, in that order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		keyResolver = secrets.NewResolver()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pitch-engine.yaml or ~/.config/pitch-engine/config.yaml)")
	rootCmd.PersistentFlags().String("fund", "", "fund profile file (default: ./fund.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pitch-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pitch-engine"))
		}
	}

	viper.SetEnvPrefix("PITCH_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stageConfig assembles the pipeline configuration from viper. Unset values
// stay zero; the API clients apply their own defaults.
func stageConfig() types.PipelineConfig {
	userAgent := "pitch-engine/" + version
	return types.PipelineConfig{
		Research: types.ResearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("research.timeout"),
				UserAgent: userAgent,
			},
			Model:       viper.GetString("research.model"),
			MaxTokens:   viper.GetInt("research.max_tokens"),
			Temperature: viper.GetFloat64("research.temperature"),
			MaxRetries:  viper.GetInt("research.max_retries"),
		},
		Generation: types.GenerationConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("generation.timeout"),
				UserAgent: userAgent,
			},
			Model:      viper.GetString("generation.model"),
			MaxTokens:  viper.GetInt("generation.max_tokens"),
			MaxRetries: viper.GetInt("generation.max_retries"),
		},
		Server: types.ServerConfig{
			Addr:       viper.GetString("server.addr"),
			PitchesDir: viper.GetString("server.pitches_dir"),
		},
	}
}

// loadFundProfile reads the fund profile from the --fund flag or the default
// location.
func loadFundProfile() (types.FundProfile, error) {
	path, _ := rootCmd.PersistentFlags().GetString("fund")
	if path == "" {
		path = viper.GetString("fund_profile")
	}
	if path == "" {
		path = fund.DefaultProfilePath
	}
	return fund.LoadProfile(path)
}

// buildPipeline resolves credentials, loads the fund profile, and wires the
// production backends. Credential failures happen here, before any network
// call.
func buildPipeline(progress io.Writer) (*pipeline.Pipeline, error) {
	perplexityKey, err := keyResolver.Resolve(secrets.PerplexityKey)
	if err != nil {
		return nil, err
	}
	anthropicKey, err := keyResolver.Resolve(secrets.AnthropicKey)
	if err != nil {
		return nil, err
	}

	profile, err := loadFundProfile()
	if err != nil {
		return nil, err
	}

	cfg := stageConfig()
	return &pipeline.Pipeline{
		Research:   &research.PerplexityBackend{APIKey: perplexityKey, Config: cfg.Research},
		Generation: &pitch.ClaudeBackend{APIKey: anthropicKey, Config: cfg.Generation},
		Fund:       profile,
		Progress:   progress,
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
