package reports

import (
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	pageMargin  = 15.0
	titleHeight = 10.0
	headHeight  = 7.0
	rowHeight   = 6.0
	fontFamily  = "Helvetica"
)

var columnX = []float64{pageMargin, 60, 80, 100, 130, 160}

// ExportPDF writes a paginated A4 table to path.
func ExportPDF(path, title string, headers []string, rows [][]string) error {
	pdf := renderPDF(title, headers, rows)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}

func renderPDF(title string, headers []string, rows [][]string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()
	bottom := pageHeight - pageMargin

	y := pageMargin
	pdf.SetFont(fontFamily, "B", 14)
	pdf.Text(pageMargin, y, tr(title))
	y += titleHeight

	pdf.SetFont(fontFamily, "B", 10)
	drawRow(pdf, tr, y, headers)
	y += headHeight

	pdf.SetFont(fontFamily, "", 10)
	for _, row := range rows {
		if y > bottom {
			pdf.AddPage()
			y = pageMargin
		}
		drawRow(pdf, tr, y, row)
		y += rowHeight
	}
	return pdf
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, y float64, cells []string) {
	for i, cell := range cells {
		if i >= len(columnX) {
			break
		}
		pdf.Text(columnX[i], y, tr(cell))
	}
}
