// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package research gathers an unstructured research summary for one LP by
// querying a research API with a fixed set of focused queries.
package research

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// Research runs the focused queries sequentially against backend and combines
// the answers into one research document with deduplicated citations.
// Progress messages go to w. Every failure surfaces as a *types.RequestError;
// an empty answer is a failure, never an empty success.
func Research(ctx context.Context, backend Backend, lpName, additionalContext string, w io.Writer) (*types.ResearchResult, error) {
	if strings.TrimSpace(lpName) == "" {
		return nil, &types.RequestError{API: backend.Name(), Err: errors.New("LP name is empty")}
	}

	var sections []string
	var citations []string

	for _, q := range focusedQueries {
		query, err := renderQuery(q, lpName, additionalContext)
		if err != nil {
			return nil, &types.RequestError{API: backend.Name(), Err: err}
		}

		fmt.Fprintf(w, "  - Researching %s...\n", strings.ToLower(q.heading))

		answer, err := backend.Query(ctx, query)
		if err != nil {
			return nil, &types.RequestError{API: backend.Name(), Err: err}
		}
		if strings.TrimSpace(answer.Text) == "" {
			return nil, &types.RequestError{
				API: backend.Name(),
				Err: fmt.Errorf("empty answer for %s", q.heading),
			}
		}

		sections = append(sections, fmt.Sprintf("## %s\n\n%s", q.heading, answer.Text))
		citations = append(citations, answer.Citations...)
	}

	unique := dedupeCitations(citations)

	summary := strings.Join(sections, "\n\n")
	if len(unique) > 0 {
		var b strings.Builder
		b.WriteString(summary)
		b.WriteString("\n\n## Sources\n")
		for _, c := range unique {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		summary = b.String()
	}

	return &types.ResearchResult{
		LPName:    lpName,
		Summary:   summary,
		Citations: unique,
	}, nil
}

// dedupeCitations removes duplicates while preserving first-seen order.
func dedupeCitations(citations []string) []string {
	seen := make(map[string]bool, len(citations))
	var unique []string
	for _, c := range citations {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		unique = append(unique, c)
	}
	return unique
}
