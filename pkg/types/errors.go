// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a required API key that no credential source
// could supply. It is returned before any network call is attempted.
type ConfigurationError struct {
	// Key is the credential that could not be resolved.
	Key string

	// Sources lists the lookup locations that were tried, in order.
	Sources []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Sources) == 0 {
		return fmt.Sprintf("no %s configured", e.Key)
	}
	return fmt.Sprintf("no %s configured (checked %s)", e.Key, strings.Join(e.Sources, ", "))
}

// RequestError reports a research API failure: network error, non-success
// status, or a malformed response.
type RequestError struct {
	// API names the upstream service (e.g. "perplexity").
	API string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s request: %v", e.API, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// GenerationError reports a generation API failure or a response that does
// not contain the expected section structure.
type GenerationError struct {
	// Reason describes what went wrong when Err alone is not enough.
	Reason string

	// Missing lists section keys absent from the model response, if any.
	Missing []SectionKey
	Err     error
}

func (e *GenerationError) Error() string {
	if len(e.Missing) > 0 {
		keys := make([]string, len(e.Missing))
		for i, k := range e.Missing {
			keys[i] = string(k)
		}
		return fmt.Sprintf("generation response missing sections: %s", strings.Join(keys, ", "))
	}
	if e.Err != nil {
		if e.Reason != "" {
			return fmt.Sprintf("%s: %v", e.Reason, e.Err)
		}
		return fmt.Sprintf("generation: %v", e.Err)
	}
	return e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }

// OutputError reports a failure writing the rendered pitch to a file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }
