package labelgen

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// FontDescriptor describes the font a measurement is taken under.
type FontDescriptor struct {
	Weight     int     // CSS-style weight, 100-900
	SizePx     float64 // pixel size
	LineHeight float64 // line height multiplier
	Family     string  // font family name
}

// String renders the descriptor in shorthand form, e.g. "125 14px/1.2 sans-serif".
func (d FontDescriptor) String() string {
	return fmt.Sprintf("%d %gpx/%g %s", d.Weight, d.SizePx, d.LineHeight, d.Family)
}

// Metrics are the text-shaping measurements of a string under a font.
type Metrics struct {
	Width   float64 // advance width in pixels
	Ascent  float64 // pixels above the baseline
	Descent float64 // pixels below the baseline
}

// Measurer is the injected text-shaping capability. Pixel measurements must
// correspond 1:1 to the pixel size requested in the descriptor.
//
// Implementations may keep a mutable measurement context between calls but
// must not let one call's state leak into the next; they are not required
// to be safe for concurrent use.
type Measurer interface {
	Measure(text string, font FontDescriptor) (Metrics, error)
}

// Helvetica vertical metrics as a fraction of the font size. The ascent
// ratio matches the one used for OCR text layer positioning in PDFs.
const (
	helveticaAscentRatio  = 0.718
	helveticaDescentRatio = 0.207
)

// PDFMeasurer measures text through a PDF font context. Widths come from
// the font's advance tables; ascent and descent are derived from the font
// size via fixed Helvetica ratios.
//
// Not safe for concurrent use: the underlying PDF context is mutable.
type PDFMeasurer struct {
	pdf *fpdf.Fpdf
}

// NewPDFMeasurer creates a measurer with a point-unit PDF context, so one
// document unit corresponds to one requested pixel.
func NewPDFMeasurer() *PDFMeasurer {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	return &PDFMeasurer{pdf: pdf}
}

// Measure implements Measurer.
func (m *PDFMeasurer) Measure(text string, font FontDescriptor) (Metrics, error) {
	style := ""
	if font.Weight >= 600 {
		style = "B"
	}
	m.pdf.SetFont("Helvetica", style, font.SizePx)
	if err := m.pdf.Error(); err != nil {
		return Metrics{}, fmt.Errorf("setting measurement font %s: %w", font, err)
	}

	// Measure in ISO-8859-1, the encoding the PDF font tables index by.
	latin1, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		latin1 = text
	}

	return Metrics{
		Width:   m.pdf.GetStringWidth(latin1),
		Ascent:  font.SizePx * helveticaAscentRatio,
		Descent: font.SizePx * helveticaDescentRatio,
	}, nil
}
