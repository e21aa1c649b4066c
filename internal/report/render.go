package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Render turns plan text into a finalized US Letter PDF document.
func Render(planText string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := RenderTo(&buf, planText); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo writes the PDF for planText to w and returns the layout it was drawn from.
func RenderTo(w io.Writer, planText string) (Layout, error) {
	return renderTo(w, planText, true)
}

func renderTo(w io.Writer, planText string, compress bool) (Layout, error) {
	pdf := newPDF(compress)
	layout := Paginate(Parse(planText), &fpdfMeasurer{pdf: pdf})

	pdf.SetFooterFunc(func() {
		drawText(pdf, Margin, FooterY, Footer, footerStyle)
	})

	pdf.AddPage()
	drawText(pdf, Margin, Margin, Title, titleStyle)
	drawText(pdf, Margin, Margin+titleGap, Subtitle, subtitleStyle)

	page := 1
	for _, line := range layout.Lines {
		for page < line.Page {
			pdf.AddPage()
			page++
		}
		// style is applied per line, never carried over from the previous page
		drawText(pdf, line.X, line.Y, line.Text, line.Style)
	}

	if err := pdf.Output(w); err != nil {
		return Layout{}, fmt.Errorf("output pdf: %w", err)
	}
	return layout, nil
}

func newPDF(compress bool) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(compress)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("fitcoach", true)
	return pdf
}

func applyStyle(pdf *fpdf.Fpdf, style Style) {
	pdf.SetFont(style.Family, style.fontStyle(), style.Size)
	pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
}

func drawText(pdf *fpdf.Fpdf, x, y float64, text string, style Style) {
	applyStyle(pdf, style)
	pdf.Text(x, y, toWinAnsi(text))
}

// fpdfMeasurer uses the core font metrics of the document being drawn.
type fpdfMeasurer struct {
	pdf *fpdf.Fpdf
}

func (m *fpdfMeasurer) Width(text string, style Style) float64 {
	m.pdf.SetFont(style.Family, style.fontStyle(), style.Size)
	return m.pdf.GetStringWidth(toWinAnsi(text))
}

// NewMeasurer returns a Measurer backed by the PDF core font metrics.
func NewMeasurer() Measurer {
	return &fpdfMeasurer{pdf: newPDF(true)}
}
