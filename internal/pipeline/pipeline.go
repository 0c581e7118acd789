// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package pipeline runs the research, generation, and assembly stages in
// sequence for one LP. Each stage blocks until its response arrives; there is
// no parallelism and no state beyond the run itself.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/bramblevc/pitch-engine/internal/fund"
	"github.com/bramblevc/pitch-engine/internal/pitch"
	"github.com/bramblevc/pitch-engine/internal/research"
	"github.com/bramblevc/pitch-engine/pkg/types"
)

// Pipeline holds the backends and fund material for pitch runs.
type Pipeline struct {
	Research   research.Backend
	Generation pitch.Backend
	Fund       types.FundProfile

	// Progress receives human-readable stage updates; nil discards them.
	Progress io.Writer
}

// Options are the per-run inputs.
type Options struct {
	// LPName is the investor to research and personalise for.
	LPName string

	// Context is optional free text about the LP or the meeting.
	Context string

	// Notes are optional notes from the team to incorporate.
	Notes string
}

// Run executes research then generation and returns the finished pitch with
// its research attached. Errors from either stage surface unchanged.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*types.Pitch, error) {
	w := p.Progress
	if w == nil {
		w = io.Discard
	}

	fmt.Fprintf(w, "Researching %s...\n", opts.LPName)
	result, err := research.Research(ctx, p.Research, opts.LPName, opts.Context, w)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "Generating personalised pitch...")
	generated, err := pitch.Generate(ctx, p.Generation, pitch.Request{
		LPName:    opts.LPName,
		Research:  result.Summary,
		Notes:     opts.Notes,
		FundName:  p.Fund.Name,
		FundPitch: fund.PitchText(p.Fund),
	})
	if err != nil {
		return nil, err
	}

	generated.Research = *result
	return generated, nil
}
