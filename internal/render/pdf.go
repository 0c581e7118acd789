// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// Brand colours (RGB).
var (
	brandGreen = [3]int{45, 80, 22}
	goldAccent = [3]int{201, 162, 39}
	greyText   = [3]int{102, 102, 102}
	darkText   = [3]int{51, 51, 51}
)

// PDF renders the pitch as a styled PDF document.
func PDF(fundName string, p *types.Pitch) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 25)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(greyText[0], greyText[1], greyText[2])
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Title with gold underline.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(brandGreen[0], brandGreen[1], brandGreen[2])
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("%s - Pitch for %s", fundName, p.LPName)), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(goldAccent[0], goldAccent[1], goldAccent[2])
	pdf.SetLineWidth(1)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(greyText[0], greyText[1], greyText[2])
	pdf.MultiCell(0, 5, tr("Generated: "+p.GeneratedAt.Format("2006-01-02 15:04")), "", "L", false)
	pdf.Ln(6)

	writeSection(pdf, tr, "LP Profile Summary", p.LPSummary)
	for _, s := range p.Content.Sections() {
		writeSection(pdf, tr, s.Title, s.Text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSection adds a section header with a light underline and the body text.
func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(brandGreen[0], brandGreen[1], brandGreen[2])
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(darkText[0], darkText[1], darkText[2])
	pdf.MultiCell(0, 5, tr(plainText(orNA(body))), "", "L", false)
}

// plainText strips the markdown decoration the generator uses inside section
// text, since the PDF styles headings itself.
func plainText(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimPrefix(line, "> ")
		trimmed = strings.TrimLeft(trimmed, "#")
		lines = append(lines, strings.TrimPrefix(trimmed, " "))
	}
	return strings.Join(lines, "\n")
}
