// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package pitch turns LP research into a personalised pitch by sending one
// combined prompt to a text-generation API and validating the structured
// response.
package pitch

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// now is the clock used to stamp generated pitches. Tests override it for
// deterministic output.
var now = time.Now

// Request carries everything the generator needs for one pitch.
type Request struct {
	// LPName is the investor the pitch is personalised for.
	LPName string

	// Research is the research prose from the research stage.
	Research string

	// Notes are optional free-text notes from the team.
	Notes string

	// FundName and FundPitch identify the fund and its core pitch material.
	FundName  string
	FundPitch string
}

// generationResponse mirrors the JSON object the prompt asks the model for:
// the LP summary plus the nine pitch sections.
type generationResponse struct {
	LPSummary string `json:"lp_summary"`
	types.PitchContent
}

// Generate issues one combined generation call and returns the finished
// pitch. Any API failure, unparseable response, or response missing one of
// the nine sections surfaces as a *types.GenerationError; there is no
// partial-success mode.
func Generate(ctx context.Context, backend Backend, req Request) (*types.Pitch, error) {
	prompt, err := renderPrompt(req)
	if err != nil {
		return nil, &types.GenerationError{Reason: "rendering prompt", Err: err}
	}

	raw, err := backend.Complete(ctx, prompt)
	if err != nil {
		return nil, &types.GenerationError{Reason: "calling generation API", Err: err}
	}

	var resp generationResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &resp); err != nil {
		return nil, &types.GenerationError{Reason: "parsing generation response as JSON", Err: err}
	}

	if missing := resp.PitchContent.Missing(); len(missing) > 0 {
		return nil, &types.GenerationError{Missing: missing}
	}

	return &types.Pitch{
		LPName:      req.LPName,
		GeneratedAt: now().UTC().Truncate(time.Minute),
		LPSummary:   resp.LPSummary,
		Content:     resp.PitchContent,
	}, nil
}

// stripCodeFences removes a Markdown code fence wrapping, which models emit
// despite being asked for bare JSON.
func stripCodeFences(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	return strings.TrimSpace(s)
}
