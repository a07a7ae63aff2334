package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfRenderer struct {
	tmpl Template
	loc  *Locale
}

// pdfText maps grouping spaces that the core PDF fonts lack onto plain spaces.
var pdfText = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

func (r *pdfRenderer) Render(_ context.Context, data any) (*Result, error) {
	doc, err := r.tmpl.Build(data, r.loc)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, text(doc.Title), "", 1, "L", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(185, 28, 28)
		pdf.CellFormat(0, 5, text(strings.ToUpper(doc.Subtitle)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(17, 24, 39)
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range doc.Header {
		pdf.CellFormat(0, 5, text(line.Label+": "+line.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	width, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	half := (width - left - right) / 2

	for _, section := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 6, text(strings.ToUpper(section.Heading)), "B", 1, "L", false, 0, "")
		pdf.SetTextColor(17, 24, 39)
		for _, line := range section.Lines {
			style := ""
			if line.Emphasis {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(half, 6, text(line.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(half, 6, text(line.Value), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	if doc.Footer != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(0, 4, text(doc.Footer), "T", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return &Result{
		Headers: map[string]string{
			"Content-Type":        "application/pdf",
			"Content-Disposition": fmt.Sprintf("inline; filename=%q", r.tmpl.Name+".pdf"),
		},
		Report: buf.Bytes(),
	}, nil
}
