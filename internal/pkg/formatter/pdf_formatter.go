package formatter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/sparkquote/estimator-backend/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Relative paths where the TTF font may live.
	// In Docker runtime we copy fonts to /app/ttf,
	// so for the compiled binary the path is ./ttf/DejaVuSans.ttf.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// resolveFontPath tries to find the DejaVuSans font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}

	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}

	return ""
}

func (mf *PDFFormatter) Format(quote *entity.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Try to use the UTF-8 capable DejaVuSans font, bundled with the project.
	// The £ sign and mm² in material names need it; Arial is the fallback.
	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(12)

	pdf.SetFont(fontName, "", 11)
	_, lineHeight := pdf.GetFontSize()
	pdf.MultiCell(0, lineHeight*1.5, quote.Description, "", "", false)
	pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("Hourly rate: £%.2f", quote.HourlyRate), "", "", false)
	pdf.Ln(4)

	for _, task := range quote.Tasks {
		pdf.SetFont(fontName, "B", 14)
		pdf.MultiCell(0, lineHeight*1.8, task.Job, "", "", false)

		pdf.SetFont(fontName, "", 11)
		pdf.MultiCell(0, lineHeight*1.5,
			fmt.Sprintf("Labour: %s (%s), confidence %s",
				hours(task.TimeRange), money(task.CostRange.Labour), task.Confidence),
			"", "", false)

		for _, m := range task.Materials {
			line := "  - " + m.Name
			if m.PriceRange != nil {
				line += " (" + money(*m.PriceRange) + ")"
			}
			pdf.MultiCell(0, lineHeight*1.5, line, "", "", false)
		}

		pdf.MultiCell(0, lineHeight*1.5,
			fmt.Sprintf("Total for %s: %s", task.Job, money(task.CostRange.Total)),
			"", "", false)
		pdf.Ln(3)
	}

	if quote.Totals != nil {
		pdf.SetFont(fontName, "B", 14)
		pdf.MultiCell(0, lineHeight*1.8, "Totals", "", "", false)

		pdf.SetFont(fontName, "", 11)
		pdf.MultiCell(0, lineHeight*1.5, "Time: "+hours(quote.Totals.Hours), "", "", false)
		pdf.MultiCell(0, lineHeight*1.5, "Labour: "+money(quote.Totals.Labour), "", "", false)
		pdf.MultiCell(0, lineHeight*1.5, "Materials: "+money(quote.Totals.Materials), "", "", false)

		pdf.SetFont(fontName, "B", 12)
		pdf.MultiCell(0, lineHeight*1.5, "Grand total: "+money(quote.Totals.Total), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (mf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
