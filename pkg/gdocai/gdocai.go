// Package gdocai turns Google Document AI responses into the read-result
// schema used by the generation pipeline.
//
// Document AI reports geometry as vertices normalized to 0-1; boxes are
// scaled to the page's pixel dimensions on conversion so the output matches
// what pixel-based engines produce. Tokens are attached to their lines by
// text anchor containment.
package gdocai

import (
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// FromProto converts a Document AI response into per-page read results.
func FromProto(doc *documentaipb.Document) ([]ocr.ReadResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	results := make([]ocr.ReadResult, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		if page.Dimension == nil {
			return nil, fmt.Errorf("page %d has no dimension", page.PageNumber)
		}

		result := ocr.ReadResult{
			Page:   int(page.PageNumber),
			Width:  float64(page.Dimension.Width),
			Height: float64(page.Dimension.Height),
			Unit:   page.Dimension.Unit,
		}

		for _, line := range page.Lines {
			box := boxFromLayout(line.Layout, page.Dimension)
			if box == nil {
				continue
			}
			ocrLine := ocr.Line{
				BoundingBox: box,
				Text:        cleanText(textFromLayout(line.Layout, doc.Text)),
			}

			for _, token := range page.Tokens {
				if !anchorWithin(token.Layout, line.Layout) {
					continue
				}
				wordBox := boxFromLayout(token.Layout, page.Dimension)
				if wordBox == nil {
					continue
				}
				word := ocr.Word{
					BoundingBox: wordBox,
					Text:        cleanText(textFromLayout(token.Layout, doc.Text)),
				}
				if token.Layout != nil {
					word.Confidence = float64(token.Layout.Confidence)
				}
				ocrLine.Words = append(ocrLine.Words, word)
			}

			result.Lines = append(result.Lines, ocrLine)
		}

		results = append(results, result)
	}

	return results, nil
}

// LoadDocument reads a Document AI response saved as protojson.
func LoadDocument(path string) (*documentaipb.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document response: %w", err)
	}
	var doc documentaipb.Document
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}
	return &doc, nil
}

// boxFromLayout scales a layout's normalized vertices to pixel coordinates
// as an 8-number clockwise box. Returns nil when geometry is missing.
func boxFromLayout(layout *documentaipb.Document_Page_Layout, dim *documentaipb.Document_Page_Dimension) []float64 {
	if layout == nil || layout.BoundingPoly == nil || len(layout.BoundingPoly.NormalizedVertices) < 4 {
		return nil
	}
	v := layout.BoundingPoly.NormalizedVertices
	w, h := float64(dim.Width), float64(dim.Height)
	return []float64{
		float64(v[0].X) * w, float64(v[0].Y) * h,
		float64(v[1].X) * w, float64(v[1].Y) * h,
		float64(v[2].X) * w, float64(v[2].Y) * h,
		float64(v[3].X) * w, float64(v[3].Y) * h,
	}
}

// textFromLayout extracts the text covered by a layout's anchor segments.
func textFromLayout(layout *documentaipb.Document_Page_Layout, fullText string) string {
	if layout == nil || layout.TextAnchor == nil {
		return ""
	}
	runes := []rune(fullText)
	var b strings.Builder
	for _, seg := range layout.TextAnchor.TextSegments {
		start, end := int(seg.StartIndex), int(seg.EndIndex)
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start > end {
			start = end
		}
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}

// anchorWithin reports whether the element's text range is contained in the
// parent's.
func anchorWithin(element, parent *documentaipb.Document_Page_Layout) bool {
	if element == nil || parent == nil ||
		element.TextAnchor == nil || parent.TextAnchor == nil ||
		len(element.TextAnchor.TextSegments) == 0 || len(parent.TextAnchor.TextSegments) == 0 {
		return false
	}
	es := element.TextAnchor.TextSegments[0]
	ps := parent.TextAnchor.TextSegments[0]
	return es.StartIndex >= ps.StartIndex && es.EndIndex <= ps.EndIndex
}

// cleanText strips line breaks and surrounding whitespace from anchor text.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(s)
}
