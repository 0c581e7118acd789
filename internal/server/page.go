// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package server

import (
	"html/template"
	"net/http"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// pageData feeds the single-page template for both the form and the results.
type pageData struct {
	FundName string
	Pitch    *types.Pitch
	Sections []types.Section
	Saved    string
	Recent   []string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.FundName}} LP Pitch Tool</title>
<style>
  body { font-family: Georgia, serif; max-width: 860px; margin: 2rem auto; color: #333; }
  h1 { color: #2d5016; }
  h2 { color: #2d5016; border-bottom: 2px solid #c9a227; padding-bottom: 0.3rem; }
  .summary { background: #f8f6f0; border-left: 4px solid #c9a227; padding: 1rem; }
  .section { white-space: pre-wrap; margin-bottom: 1.5rem; }
  form input[type=text], form textarea { width: 100%; padding: 0.5rem; margin: 0.3rem 0 1rem; }
  form button { background: #2d5016; color: white; padding: 0.6rem 1.2rem; border: none; cursor: pointer; }
  .recent { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>{{.FundName}} LP Pitch Tool</h1>
<p>Generate personalised pitch content for LP meetings.</p>

<form method="post" action="/generate">
  <label for="lp_name">LP / Investor Name</label>
  <input type="text" id="lp_name" name="lp_name" placeholder="e.g., Family Office X, Pension Fund Y" required>
  <label for="context">Notes &amp; Context (optional)</label>
  <textarea id="context" name="context" rows="3" placeholder="e.g., met at a conference, interested in health thesis"></textarea>
  <button type="submit">Generate Personalised Pitch</button>
</form>

{{if .Pitch}}
<hr>
<h2>Personalised Pitch for {{.Pitch.LPName}}</h2>
<div class="summary">{{.Pitch.LPSummary}}</div>
{{range .Sections}}
<h2>{{.Title}}</h2>
<div class="section">{{.Text}}</div>
{{end}}
{{if .Saved}}<p><a href="/pitches/{{.Saved}}">Download as Markdown</a></p>{{end}}
{{end}}

{{if .Recent}}
<hr>
<div class="recent">
<strong>Recent pitches</strong>
<ul>
{{range .Recent}}<li><a href="/pitches/{{.}}">{{.}}</a></li>
{{end}}</ul>
</div>
{{end}}
</body>
</html>
`))

// renderPage executes the page template with the pitch sections flattened
// for the template's range.
func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	if data.Pitch != nil {
		data.Sections = data.Pitch.Content.Sections()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.WithError(err).Error("rendering page")
	}
}
