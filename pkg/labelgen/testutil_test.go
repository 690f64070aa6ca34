package labelgen

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// stubMeasurer is a deterministic text-shaping stand-in: every rune
// advances 0.6em, ascent is 0.8em and descent 0.2em.
type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, font FontDescriptor) (Metrics, error) {
	return Metrics{
		Width:   float64(utf8.RuneCountInString(text)) * 0.6 * font.SizePx,
		Ascent:  0.8 * font.SizePx,
		Descent: 0.2 * font.SizePx,
	}, nil
}

// testRegion is a 100x50 map-unit region whose canvas representation is
// scaled 2x, anchored to line 0 of the test page.
func testRegion(fieldType FieldType, format FieldFormat) Region {
	return Region{
		BBox:       []float64{0, 0, 100, 0, 100, -50, 0, -50},
		CanvasBBox: []float64{0, 0, 200, 0, 200, -100, 0, -100},
		Page:       1,
		Tag:        Tag{Name: "testField", Type: fieldType, Format: format},
		OCRLine:    0,
	}
}

// testPage is a 1000x800 pixel page with one line of words, each with a
// uniform character pixel width of 10 and a height of 20.
func testPage() ocr.ReadResult {
	words := []string{"alpha", "beta", "gamma"}
	line := ocr.Line{Words: make([]ocr.Word, 0, len(words))}
	x := 100.0
	for _, text := range words {
		w := float64(len(text)) * 10
		line.Words = append(line.Words, ocr.Word{
			BoundingBox: ocr.Quad(x, 100, w, 20),
			Text:        text,
			Confidence:  0.95,
		})
		x += w + 10
	}
	line.Text = "alpha beta gamma"
	line.BoundingBox = ocr.Quad(100, 100, x-110, 20)

	return ocr.ReadResult{
		Page:   1,
		Width:  1000,
		Height: 800,
		Unit:   "pixel",
		Lines:  []ocr.Line{line},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func almostEqual(t *testing.T, got, want, tolerance float64, context string) {
	t.Helper()
	if diff := got - want; diff > tolerance || diff < -tolerance {
		t.Errorf("%s: got %g, want %g", context, got, want)
	}
}
