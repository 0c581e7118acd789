// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package research

import (
	"bytes"
	"fmt"
	"text/template"
)

// focusedQuery pairs a research heading with the query prompt that fills it.
// Three narrow queries produce better-sourced answers than one broad one.
type focusedQuery struct {
	heading string
	tmpl    *template.Template
}

// queryData is the template input for every focused query.
type queryData struct {
	LPName      string
	ContextNote string
}

var focusedQueries = []focusedQuery{
	{
		heading: "Organisation Overview",
		tmpl: template.Must(template.New("overview").Parse(`Research "{{.LPName}}" as a potential investor/LP.{{.ContextNote}}

Focus ONLY on organisation overview:
- What type of investor are they? (family office, pension fund, corporate, endowment, fund of funds, sovereign wealth, HNWI, etc.)
- AUM and investment capacity
- Geographic focus and headquarters
- Key decision makers and their backgrounds (names, roles, career history)
- Organisational structure and governance

Be specific with facts, names, and figures. Cite sources.`)),
	},
	{
		heading: "Investment Focus & History",
		tmpl: template.Must(template.New("history").Parse(`Research "{{.LPName}}" investment history and focus.{{.ContextNote}}

Focus ONLY on their investments:
- What sectors/themes do they invest in?
- What stages do they back (seed, Series A, growth, funds)?
- Notable investments (especially food, sustainability, health, agtech, climate)
- Stated investment thesis or mandate
- ESG/impact requirements or frameworks
- What they look for in fund managers

Be specific with deal names, amounts, dates. Cite sources.`)),
	},
	{
		heading: "Recent News & Priorities",
		tmpl: template.Must(template.New("news").Parse(`Research "{{.LPName}}" recent news and strategic priorities.{{.ContextNote}}

Focus ONLY on recent activity (last 2 years):
- Recent investments or fund commitments
- Strategy announcements or pivots
- Leadership changes
- Key partnerships or relationships
- Public statements about priorities
- Any controversies or concerns

Be specific with dates and details. Cite sources.`)),
	},
}

// renderQuery executes one focused query template.
func renderQuery(q focusedQuery, lpName, additionalContext string) (string, error) {
	data := queryData{LPName: lpName}
	if additionalContext != "" {
		data.ContextNote = " Context: " + additionalContext
	}
	var buf bytes.Buffer
	if err := q.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s query: %w", q.heading, err)
	}
	return buf.String(), nil
}
