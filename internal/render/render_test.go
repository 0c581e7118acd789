// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

func testPitch() *types.Pitch {
	return &types.Pitch{
		LPName:      "Holland & Barrett",
		GeneratedAt: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
		LPSummary:   "Health & wellness retailer, invests in consumer brands.",
		Content: types.PitchContent{
			OpeningHook:          "hook text",
			ThesisFraming:        "thesis text",
			TailwindsEmphasis:    "tailwinds text",
			PortfolioHighlights:  "portfolio text",
			TeamSpotlight:        "team text",
			ValueAddFraming:      "value-add text",
			AnticipatedQuestions: "questions text",
			ConversationStarters: "starters text",
			ConcernsToAddress:    "concerns text",
		},
		Research: types.ResearchResult{
			LPName:    "Holland & Barrett",
			Summary:   "## Organisation Overview\n\nHealth & wellness retailer.",
			Citations: []string{"https://hollandandbarrett.com"},
		},
	}
}

func TestMarkdownHeadingsInOrder(t *testing.T) {
	md := Markdown("Bramble Ventures", testPitch())

	headings := []string{
		"# Bramble Ventures - Personalised Pitch for Holland & Barrett",
		"## LP Profile Summary",
		"## Opening Hook",
		"## Investment Thesis Framing",
		"## Key Market Tailwinds to Emphasise",
		"## Portfolio Highlights",
		"## Team & Advisors to Feature",
		"## Value-Add Framing",
		"## Anticipated Questions & Answers",
		"## Conversation Starters",
		"## Potential Concerns to Address",
		"## Research Notes",
	}

	pos := -1
	for _, h := range headings {
		i := strings.Index(md, h)
		require.GreaterOrEqual(t, i, 0, "missing heading %q", h)
		assert.Greater(t, i, pos, "heading %q out of order", h)
		pos = i
	}

	assert.Contains(t, md, "*Generated: 2026-02-14 09:30*")
	assert.Contains(t, md, "> hook text")
	assert.Contains(t, md, "thesis text")
	assert.Contains(t, md, "concerns text")
	assert.Contains(t, md, "Health & wellness retailer.")
}

func TestMarkdownIdempotent(t *testing.T) {
	p := testPitch()
	first := Markdown("Bramble Ventures", p)
	second := Markdown("Bramble Ventures", p)
	assert.Equal(t, first, second)
}

func TestMarkdownEmptySummaryRendersNA(t *testing.T) {
	p := testPitch()
	p.LPSummary = ""
	md := Markdown("Bramble Ventures", p)
	assert.Contains(t, md, "## LP Profile Summary\n\nN/A")
}

func TestJSONIdempotent(t *testing.T) {
	p := testPitch()
	first, err := JSON(p)
	require.NoError(t, err)
	second, err := JSON(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJSONShape(t *testing.T) {
	data, err := JSON(testPitch())
	require.NoError(t, err)

	var doc struct {
		Research types.ResearchResult       `json:"research"`
		Pitch    map[string]json.RawMessage `json:"pitch"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Holland & Barrett", doc.Research.LPName)
	assert.Contains(t, doc.Pitch, "lp_summary")
	assert.Contains(t, doc.Pitch, "sections")
	assert.NotContains(t, doc.Pitch, "research", "research must not be nested inside pitch")
}

func TestPitchContentJSONRoundTrip(t *testing.T) {
	content := testPitch().Content

	data, err := json.Marshal(content)
	require.NoError(t, err)

	// Exactly the nine section keys.
	var asMap map[string]string
	require.NoError(t, json.Unmarshal(data, &asMap))
	require.Len(t, asMap, 9)
	for _, key := range types.SectionOrder() {
		assert.Contains(t, asMap, string(key))
	}

	// Values survive the round trip unchanged.
	var back types.PitchContent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, content, back)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitch.md")
	require.NoError(t, WriteFile(path, []byte("content")))

	err := WriteFile(filepath.Join(t.TempDir(), "missing-dir", "pitch.md"), []byte("content"))
	require.Error(t, err)

	var outErr *types.OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Contains(t, outErr.Path, "pitch.md")
}

func TestPDF(t *testing.T) {
	data, err := PDF("Bramble Ventures", testPitch())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output should be a PDF document")
}

func TestPlainText(t *testing.T) {
	in := "**Bold Title**: body\n> quoted\n## heading"
	out := plainText(in)
	assert.Equal(t, "Bold Title: body\nquoted\nheading", out)
}
