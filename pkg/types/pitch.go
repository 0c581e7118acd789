// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package types defines the shared data structures for the pitch pipeline.
package types

import "time"

// ResearchResult holds the research prose gathered for one LP. It exists only
// for the duration of a single pipeline run and is never persisted.
type ResearchResult struct {
	// LPName is the investor name the research was gathered for.
	LPName string `json:"lp_name" yaml:"lp_name"`

	// Summary is the combined research prose from all focused queries.
	Summary string `json:"research" yaml:"research"`

	// Citations are deduplicated source URLs returned by the research API.
	Citations []string `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// SectionKey identifies one of the nine fixed pitch sections.
type SectionKey string

const (
	SectionOpeningHook          SectionKey = "opening_hook"
	SectionThesisFraming        SectionKey = "thesis_framing"
	SectionTailwindsEmphasis    SectionKey = "tailwinds_emphasis"
	SectionPortfolioHighlights  SectionKey = "portfolio_highlights"
	SectionTeamSpotlight        SectionKey = "team_spotlight"
	SectionValueAddFraming      SectionKey = "value_add_framing"
	SectionAnticipatedQuestions SectionKey = "anticipated_questions"
	SectionConversationStarters SectionKey = "conversation_starters"
	SectionConcernsToAddress    SectionKey = "concerns_to_address"
)

// PitchContent holds the generated text for the nine fixed pitch sections.
// The struct fields are the complete key set: every section is always
// present in the JSON form, and presentation order is fixed by sectionTable.
type PitchContent struct {
	OpeningHook          string `json:"opening_hook" yaml:"opening_hook"`
	ThesisFraming        string `json:"thesis_framing" yaml:"thesis_framing"`
	TailwindsEmphasis    string `json:"tailwinds_emphasis" yaml:"tailwinds_emphasis"`
	PortfolioHighlights  string `json:"portfolio_highlights" yaml:"portfolio_highlights"`
	TeamSpotlight        string `json:"team_spotlight" yaml:"team_spotlight"`
	ValueAddFraming      string `json:"value_add_framing" yaml:"value_add_framing"`
	AnticipatedQuestions string `json:"anticipated_questions" yaml:"anticipated_questions"`
	ConversationStarters string `json:"conversation_starters" yaml:"conversation_starters"`
	ConcernsToAddress    string `json:"concerns_to_address" yaml:"concerns_to_address"`
}

// Section pairs a section key with its presentation title and generated text.
type Section struct {
	Key   SectionKey
	Title string
	Text  string
}

// sectionTable fixes the presentation order and heading for each section.
var sectionTable = []struct {
	key   SectionKey
	title string
	get   func(*PitchContent) string
}{
	{SectionOpeningHook, "Opening Hook", func(c *PitchContent) string { return c.OpeningHook }},
	{SectionThesisFraming, "Investment Thesis Framing", func(c *PitchContent) string { return c.ThesisFraming }},
	{SectionTailwindsEmphasis, "Key Market Tailwinds to Emphasise", func(c *PitchContent) string { return c.TailwindsEmphasis }},
	{SectionPortfolioHighlights, "Portfolio Highlights", func(c *PitchContent) string { return c.PortfolioHighlights }},
	{SectionTeamSpotlight, "Team & Advisors to Feature", func(c *PitchContent) string { return c.TeamSpotlight }},
	{SectionValueAddFraming, "Value-Add Framing", func(c *PitchContent) string { return c.ValueAddFraming }},
	{SectionAnticipatedQuestions, "Anticipated Questions & Answers", func(c *PitchContent) string { return c.AnticipatedQuestions }},
	{SectionConversationStarters, "Conversation Starters", func(c *PitchContent) string { return c.ConversationStarters }},
	{SectionConcernsToAddress, "Potential Concerns to Address", func(c *PitchContent) string { return c.ConcernsToAddress }},
}

// SectionOrder returns the nine section keys in presentation order.
func SectionOrder() []SectionKey {
	keys := make([]SectionKey, len(sectionTable))
	for i, s := range sectionTable {
		keys[i] = s.key
	}
	return keys
}

// Sections returns the content as an ordered slice of titled sections.
func (c *PitchContent) Sections() []Section {
	sections := make([]Section, len(sectionTable))
	for i, s := range sectionTable {
		sections[i] = Section{Key: s.key, Title: s.title, Text: s.get(c)}
	}
	return sections
}

// Missing returns the keys of sections with no generated text, in
// presentation order. An empty result means the content is complete.
func (c *PitchContent) Missing() []SectionKey {
	var missing []SectionKey
	for _, s := range sectionTable {
		if s.get(c) == "" {
			missing = append(missing, s.key)
		}
	}
	return missing
}

// Pitch is the full output of one pipeline run for a single LP.
type Pitch struct {
	// LPName is the investor the pitch was personalised for.
	LPName string `json:"lp_name"`

	// GeneratedAt is fixed when generation completes so that rendering the
	// same pitch twice produces identical output.
	GeneratedAt time.Time `json:"generated_at"`

	// LPSummary is a short profile of the LP, kept outside the nine
	// section keys of Content.
	LPSummary string `json:"lp_summary"`

	// Content holds the nine personalised pitch sections.
	Content PitchContent `json:"sections"`

	// Research is the underlying research the pitch was generated from.
	Research ResearchResult `json:"-"`
}
