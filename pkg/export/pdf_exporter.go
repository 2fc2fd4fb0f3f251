package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders datasets as a titled report, one block per row.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document. Rows whose Kind column equals "header" become section titles;
// every other row is written as a labelled paragraph.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(0, 8, tr(title), "", "C", false)
		pdf.Ln(4)
	}
	for _, line := range data.Preamble {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}
	if len(data.Preamble) > 0 {
		pdf.Ln(3)
	}

	textColumn := data.Headers[len(data.Headers)-1]
	for _, row := range data.Rows {
		kind := row[data.KindColumn]
		if data.KindColumn != "" && kind == "header" {
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 12)
			pdf.MultiCell(0, 8, tr(row[textColumn]), "B", "L", false)
			pdf.Ln(1)
			continue
		}
		label := ""
		if kind != "" {
			label = "[" + kind + "] "
		}
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(label+row[textColumn]), "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
