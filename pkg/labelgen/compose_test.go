package labelgen

import (
	"testing"
)

func testStyle(text string) TextStyle {
	return TextStyle{
		Text:       text,
		FontWeight: 100,
		FontSize:   "10px",
		LineHeight: 1,
		FontFamily: "sans-serif",
		Align:      styleAlign,
		Baseline:   styleBaseline,
		OffsetX:    -45,
		OffsetY:    -22,
	}
}

func composeFixture(t *testing.T, text string) GeneratedBoxes {
	t.Helper()
	region := testRegion(FieldTypeString, FormatAlphanumeric)
	boxes, err := composeBoxes(StaticConfig(), stubMeasurer{}, region, testStyle(text), testPage(),
		CharScale{Width: 5, Height: 10}, 1)
	if err != nil {
		t.Fatalf("composeBoxes failed: %v", err)
	}
	return boxes
}

// Word boxes are always wound top-left, top-right, bottom-right,
// bottom-left.
func TestComposeWindingOrder(t *testing.T) {
	boxes := composeFixture(t, "hello wide world\nsecond line")
	for _, word := range boxes.Words {
		b := word.Box
		if len(b) != 8 {
			t.Fatalf("word %q box has %d coordinates", word.Text, len(b))
		}
		if !(b[0] < b[2] && b[2] == b[4] && b[6] == b[0]) {
			t.Errorf("word %q x winding broken: %v", word.Text, b)
		}
		if !(b[1] == b[3] && b[5] == b[7] && b[1] < b[5]) {
			t.Errorf("word %q y winding broken: %v", word.Text, b)
		}
	}
}

// Pixel boxes inside the page imply percentage coordinates in [0,1].
func TestComposePercentBounds(t *testing.T) {
	boxes := composeFixture(t, "hello wide world\nsecond line")
	page := testPage()
	for _, word := range boxes.Words {
		for i, v := range word.Box {
			limit := page.Width
			if i%2 == 1 {
				limit = page.Height
			}
			if v < 0 || v > limit {
				t.Fatalf("word %q pixel coordinate %g outside page", word.Text, v)
			}
		}
		for _, v := range word.PercentBox {
			if v < 0 || v > 1 {
				t.Errorf("word %q percent coordinate %g outside [0,1]", word.Text, v)
			}
		}
	}
}

func TestComposeWordAdvance(t *testing.T) {
	boxes := composeFixture(t, "ab cd")
	if len(boxes.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(boxes.Words))
	}
	first, second := boxes.Words[0], boxes.Words[1]

	// "ab " measures 3*0.6*10 = 18px, doubled by the 2x region scale.
	almostEqual(t, second.Box[0]-first.Box[0], 36, 1e-9, "second word advance")
	almostEqual(t, first.Box[1], second.Box[1], 1e-9, "same line top")

	// "ab" is 12px wide and 10px tall in device pixels, 24x20 in image
	// pixels.
	almostEqual(t, first.Box[2]-first.Box[0], 24, 1e-9, "word width")
	almostEqual(t, first.Box[5]-first.Box[1], 20, 1e-9, "word height")
}

func TestComposeLineAdvance(t *testing.T) {
	boxes := composeFixture(t, "one\ntwo")
	if len(boxes.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(boxes.Lines))
	}
	// Effective map line height 10*1*1.35 = 13.5, doubled to 27 image px.
	dy := boxes.Lines[1].BoundingBox[1] - boxes.Lines[0].BoundingBox[1]
	almostEqual(t, dy, 27, 1e-9, "line advance")
}

// The line envelope spans the first word's top-left to the last word's
// bottom-right corner.
func TestComposeLineEnvelope(t *testing.T) {
	boxes := composeFixture(t, "hello wide world")
	if len(boxes.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(boxes.Lines))
	}
	line := boxes.Lines[0]
	if len(line.Words) != 3 {
		t.Fatalf("expected 3 words in line, got %d", len(line.Words))
	}
	first := line.Words[0].BoundingBox
	last := line.Words[2].BoundingBox

	wantEnvelope := []float64{
		first[0], first[1],
		last[4], first[1],
		last[4], last[5],
		first[0], last[5],
	}
	for i, v := range wantEnvelope {
		almostEqual(t, line.BoundingBox[i], v, 1e-9, "envelope coordinate")
	}
}

func TestComposeOCRShape(t *testing.T) {
	boxes := composeFixture(t, "hello world")
	for _, line := range boxes.Lines {
		for _, word := range line.Words {
			if word.Confidence != 1.0 {
				t.Errorf("synthetic word %q confidence %g, want 1.0", word.Text, word.Confidence)
			}
			if len(word.BoundingBox) != 8 {
				t.Errorf("synthetic word %q box has %d coordinates", word.Text, len(word.BoundingBox))
			}
		}
	}
}

func TestComposeFullBoxPassthrough(t *testing.T) {
	region := testRegion(FieldTypeString, FormatAlphanumeric)
	boxes := composeFixture(t, "hello")
	for i, v := range region.BBox {
		if boxes.Full[i] != v {
			t.Fatalf("full box coordinate %d changed: %g != %g", i, boxes.Full[i], v)
		}
	}
}

func TestComposeSkipsEmptyWords(t *testing.T) {
	boxes := composeFixture(t, "a  b")
	if len(boxes.Words) != 2 {
		t.Errorf("double space produced %d words, want 2", len(boxes.Words))
	}
}

func TestComposeBadFontSize(t *testing.T) {
	region := testRegion(FieldTypeString, FormatAlphanumeric)
	style := testStyle("hello")
	style.FontSize = "huge"
	if _, err := composeBoxes(StaticConfig(), stubMeasurer{}, region, style, testPage(),
		CharScale{Width: 5, Height: 10}, 1); err == nil {
		t.Error("expected error for malformed font size")
	}
}
