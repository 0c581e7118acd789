// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// Key describes one credential and where each source should look for it.
type Key struct {
	// EnvVar is the environment variable name, also used as the .env key.
	EnvVar string

	// File is the filename in the secrets directory.
	File string

	// HomeFile is a legacy dotfile name relative to the home directory.
	HomeFile string
}

// The two credentials the pipeline needs. The legacy home dotfile names
// predate the secrets directory and are still honoured.
var (
	PerplexityKey = Key{EnvVar: "PERPLEXITY_API_KEY", File: "perplexity-api-key", HomeFile: ".perplexity_key"}
	AnthropicKey  = Key{EnvVar: "ANTHROPIC_API_KEY", File: "anthropic-api-key", HomeFile: ".api_key"}
)

// Source supplies credential values. Each source knows which of the Key
// locations applies to it.
type Source interface {
	Name() string
	Lookup(key Key) (string, bool)
}

// EnvSource reads credentials from the process environment.
type EnvSource struct{}

func (EnvSource) Name() string { return "environment" }

func (EnvSource) Lookup(key Key) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key.EnvVar))
	return v, v != ""
}

// DotenvSource reads credentials from a .env file. A missing or unreadable
// file is treated as an empty source.
type DotenvSource struct {
	values map[string]string
}

// NewDotenvSource parses the .env file at path.
func NewDotenvSource(path string) *DotenvSource {
	values, err := godotenv.Read(path)
	if err != nil {
		return &DotenvSource{values: map[string]string{}}
	}
	return &DotenvSource{values: values}
}

func (*DotenvSource) Name() string { return ".env" }

func (s *DotenvSource) Lookup(key Key) (string, bool) {
	v := strings.TrimSpace(s.values[key.EnvVar])
	return v, v != ""
}

// DirSource reads credentials from a directory of one-file-per-key secrets.
type DirSource struct {
	values map[string]string
}

// NewDirSource loads the secrets directory at dir.
func NewDirSource(dir string) *DirSource {
	values, err := Load(dir)
	if err != nil {
		return &DirSource{values: map[string]string{}}
	}
	return &DirSource{values: values}
}

func (*DirSource) Name() string { return ".secrets/" }

func (s *DirSource) Lookup(key Key) (string, bool) {
	v, ok := s.values[key.File]
	return v, ok
}

// HomeSource reads credentials from legacy dotfiles in the home directory.
type HomeSource struct {
	// Home is the directory to treat as $HOME.
	Home string
}

func (HomeSource) Name() string { return "home dotfiles" }

func (s HomeSource) Lookup(key Key) (string, bool) {
	if s.Home == "" || key.HomeFile == "" {
		return "", false
	}
	data, err := os.ReadFile(filepath.Join(s.Home, key.HomeFile))
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(string(data))
	return v, v != ""
}

// Resolver tries an ordered list of sources and returns the first hit.
type Resolver struct {
	Sources []Source
}

// NewResolver builds the default chain: environment, ./.env, ./.secrets/,
// then home dotfiles.
func NewResolver() *Resolver {
	sources := []Source{
		EnvSource{},
		NewDotenvSource(".env"),
		NewDirSource(".secrets/"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, HomeSource{Home: home})
	}
	return &Resolver{Sources: sources}
}

// Resolve returns the credential value for key, or a ConfigurationError
// naming every source that was tried. No network is involved.
func (r *Resolver) Resolve(key Key) (string, error) {
	tried := make([]string, 0, len(r.Sources))
	for _, src := range r.Sources {
		if v, ok := src.Lookup(key); ok {
			return v, nil
		}
		tried = append(tried, src.Name())
	}
	return "", &types.ConfigurationError{Key: key.EnvVar, Sources: tried}
}
