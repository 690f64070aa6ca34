package labelgen

import (
	"testing"

	"github.com/gardar/labelsynth/pkg/ocr"
)

func inferPage(lines ...ocr.Line) ocr.ReadResult {
	return ocr.ReadResult{Page: 1, Width: 8.5, Height: 11, Unit: "inch", Lines: lines}
}

func inferLine(text string, x, y float64) ocr.Line {
	word := ocr.Word{
		BoundingBox: ocr.Quad(x, y, 1, 0.2),
		Text:        text,
		Confidence:  0.9,
	}
	return ocr.Line{
		BoundingBox: word.BoundingBox,
		Text:        text,
		Words:       []ocr.Word{word},
	}
}

// The proposal tracks the running nearest word: a candidate at distance 0.5
// wins over one at 0.9 regardless of line order.
func TestProposeTagNearestWins(t *testing.T) {
	bbox := ocr.Quad(0, 0, 2, 0.5)
	page := inferPage(
		inferLine("Customer", 0.9, 0),
		inferLine("Invoice", 0.5, 0),
	)

	got := ProposeTag(bbox, page)
	if got.Proposal.Name != "invoice" {
		t.Errorf("proposed name %q, want %q", got.Proposal.Name, "invoice")
	}
	if got.OCRLine != 1 {
		t.Errorf("proposed line %d, want 1", got.OCRLine)
	}
}

func TestProposeTagThreshold(t *testing.T) {
	bbox := ocr.Quad(0, 0, 2, 0.5)

	// 1.2 inches away, outside the initial search radius.
	page := inferPage(inferLine("Remit To", 1.2, 0))
	got := ProposeTag(bbox, page)
	if got.OCRLine != -1 {
		t.Errorf("word beyond threshold anchored line %d", got.OCRLine)
	}
	if got.Proposal.Type != FieldTypeString || got.Proposal.Format != FormatAlphanumeric {
		t.Errorf("no-match proposal changed defaults: %+v", got.Proposal)
	}
	if got.Proposal.Name != "" {
		t.Errorf("no-match proposal has name %q", got.Proposal.Name)
	}
}

func TestProposeTagNumericCues(t *testing.T) {
	tests := []struct {
		line     string
		wantType FieldType
	}{
		{"Invoice Number", FieldTypeNumber},
		{"Phone", FieldTypeNumber},
		{"Amount Due", FieldTypeNumber},
		{"Acct #", FieldTypeNumber},
		{"Customer Name", FieldTypeString},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ProposeTag(ocr.Quad(0, 0, 2, 0.5), inferPage(inferLine(tt.line, 0.3, 0)))
			if got.Proposal.Type != tt.wantType {
				t.Errorf("type for %q = %q, want %q", tt.line, got.Proposal.Type, tt.wantType)
			}
			if tt.wantType == FieldTypeNumber && got.Proposal.Format != FormatNotSpecified {
				t.Errorf("numeric proposal format %q, want not-specified", got.Proposal.Format)
			}
		})
	}
}

// Long lines fall back to the matching word's own text for the name.
func TestProposeTagLongLineUsesWordText(t *testing.T) {
	word := ocr.Word{BoundingBox: ocr.Quad(0.3, 0, 1, 0.2), Text: "Shipping", Confidence: 0.9}
	line := ocr.Line{
		BoundingBox: word.BoundingBox,
		Text:        "Shipping and handling instructions",
		Words:       []ocr.Word{word},
	}

	got := ProposeTag(ocr.Quad(0, 0, 2, 0.5), inferPage(line))
	if got.Proposal.Name != "shipping" {
		t.Errorf("proposed name %q, want %q", got.Proposal.Name, "shipping")
	}
}

func TestProposeTagShortBox(t *testing.T) {
	got := ProposeTag([]float64{1, 2}, inferPage(inferLine("Invoice", 0.5, 0)))
	if got.OCRLine != -1 {
		t.Errorf("malformed box anchored line %d", got.OCRLine)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Invoice Number", "invoiceNumber"},
		{"invoice", "invoice"},
		{"TOTAL AMOUNT DUE:", "totalAmountDue"},
		{"P.O. Box", "pOBox"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := camelCase(tt.in); got != tt.want {
			t.Errorf("camelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
