// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package render turns a finished pitch into markdown, JSON, or PDF.
// Rendering is pure formatting: the same pitch always produces identical
// bytes.
package render

import (
	"fmt"
	"strings"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// Markdown renders the pitch as a markdown document: LP summary first, the
// nine sections in presentation order, then the research as an appendix.
func Markdown(fundName string, p *types.Pitch) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Personalised Pitch for %s\n", fundName, p.LPName)
	fmt.Fprintf(&b, "*Generated: %s*\n\n---\n\n", p.GeneratedAt.Format("2006-01-02 15:04"))

	fmt.Fprintf(&b, "## LP Profile Summary\n\n%s\n\n---\n\n", orNA(p.LPSummary))

	for _, s := range p.Content.Sections() {
		text := orNA(s.Text)
		if s.Key == types.SectionOpeningHook {
			text = blockquote(text)
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n---\n\n", s.Title, text)
	}

	b.WriteString("## Research Notes\n\n")
	b.WriteString("<details>\n<summary>Click to expand full LP research</summary>\n\n")
	b.WriteString(orNA(p.Research.Summary))
	b.WriteString("\n\n</details>\n")

	return b.String()
}

// orNA substitutes a placeholder for empty text.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// blockquote prefixes every line with "> ".
func blockquote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
