// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package pitch

import (
	"bytes"
	"strings"
	"text/template"
)

// pitchPromptTmpl is the combined prompt sent to the generation API. One call
// produces the LP summary and all nine sections as a single JSON object; the
// response is all-or-nothing, so a partial answer fails the run rather than
// producing an incomplete pitch.
var pitchPromptTmpl = template.Must(template.New("pitch").Parse(`You are helping {{.FundName}} prepare for an LP meeting with {{.LPName}}.

Based on the research below, generate PERSONALISED pitch content that makes {{.FundName}}'s proposition maximally relevant to this specific LP. Keep {{.FundName}}'s core identity but frame everything through the lens of what matters to {{.LPName}}.

=== RESEARCH ON {{.LPNameUpper}} ===
{{.Research}}
{{.NotesSection}}
=== {{.FundNameUpper}}'S CORE PITCH ===
{{.FundPitch}}

=== YOUR TASK ===

Generate personalised text for each section below. For each section:
- Keep {{.FundName}}'s facts accurate
- Frame and emphasise what resonates with this LP
- Add specific "hooks" connecting {{.FundName}} to LP interests
- Use British English
- Be specific, not generic

Output as JSON with the following structure. IMPORTANT: All values must be plain text strings with proper formatting - use newlines (\n) for line breaks within strings. Do NOT use arrays or lists - format everything as readable prose or bullet points within a single string.

{
    "lp_summary": "2-3 sentence summary of who this LP is and what they care about.",

    "opening_hook": "A compelling 2-3 sentence opening that immediately connects {{.FundName}} to this LP's interests.",

    "thesis_framing": "How to frame {{.FundName}}'s investment thesis for this LP. Which themes to emphasise and why. Write 1-2 paragraphs as flowing prose.",

    "tailwinds_emphasis": "Which market tailwinds to highlight. Format as:\n\n**Tailwind 1 Name**: Explanation of relevance to this LP...\n\n**Tailwind 2 Name**: Explanation...\n\n**Tailwind 3 Name**: Explanation...",

    "portfolio_highlights": "Which portfolio companies to feature for this LP. Format as:\n\n**Company Name**: Why this company resonates with the LP's interests...\n\n**Company Name**: Why relevant...\n\n(Pick 2-4 most relevant)",

    "team_spotlight": "Which team members and advisors to spotlight. Format as:\n\n**Person Name (Role)**: Why they're relevant to this LP...\n\n**Person Name**: Why relevant...\n\n(Pick 3-4 most relevant)",

    "value_add_framing": "How to frame {{.FundName}}'s value-add for this LP. What aspects of the advisory/support model matter most to them? Write as flowing prose, 1-2 paragraphs.",

    "anticipated_questions": "Format as:\n\n**Q: Question they might ask?**\n\nPossible Answer: Suggested answer...\n\n**Q: Another question?**\n\nPossible Answer: Answer...\n\n(Include 3-5 questions)",

    "conversation_starters": "Format as:\n\n1. First conversation starter or question to ask them...\n\n2. Second conversation starter...\n\n3. Third conversation starter...",

    "concerns_to_address": "Format as:\n\n**Concern 1 Title**\nExplanation and how to address it...\n\n**Concern 2 Title**\nExplanation and how to address it...\n\n(Include 2-4 potential concerns with clear line breaks between each)"
}

Return ONLY valid JSON, no other text.`))

// promptData is the template input for the pitch prompt.
type promptData struct {
	LPName        string
	LPNameUpper   string
	FundName      string
	FundNameUpper string
	FundPitch     string
	Research      string
	NotesSection  string
}

// renderPrompt builds the combined generation prompt.
func renderPrompt(req Request) (string, error) {
	notes := ""
	if strings.TrimSpace(req.Notes) != "" {
		notes = "\nADDITIONAL NOTES FROM THE TEAM:\n" + req.Notes + "\n"
	}

	data := promptData{
		LPName:        req.LPName,
		LPNameUpper:   strings.ToUpper(req.LPName),
		FundName:      req.FundName,
		FundNameUpper: strings.ToUpper(req.FundName),
		FundPitch:     req.FundPitch,
		Research:      req.Research,
		NotesSection:  notes,
	}

	var buf bytes.Buffer
	if err := pitchPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
