// Package hocr parses hOCR documents into the read-result schema used by
// the generation pipeline.
//
// Only the elements the pipeline consumes are read: ocr_page for page
// dimensions, ocr_line / ocrx_word for geometry and text. hOCR boxes are
// x1 y1 x2 y2 corner pairs; they are expanded to the 8-number clockwise
// corner convention of the read-result schema.
package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// ParseReadResults extracts per-page read results from raw hOCR data.
func ParseReadResults(data []byte) ([]ocr.ReadResult, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing hocr html: %w", err)
	}

	var results []ocr.ReadResult
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			results = append(results, parsePage(n, len(results)+1))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(results) == 0 {
		return nil, fmt.Errorf("no ocr_page elements found in hocr data")
	}
	return results, nil
}

// parsePage collects the lines and words under one ocr_page element.
func parsePage(page *html.Node, pageNumber int) ocr.ReadResult {
	result := ocr.ReadResult{Page: pageNumber, Unit: "pixel"}

	if box, ok := titleBox(attr(page, "title")); ok {
		result.Width = box[2]
		result.Height = box[5]
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
			if line, ok := parseLine(n); ok {
				result.Lines = append(result.Lines, line)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(page)

	return result
}

// parseLine reads one ocr_line element and its ocrx_word children.
func parseLine(node *html.Node) (ocr.Line, bool) {
	box, ok := titleBox(attr(node, "title"))
	if !ok {
		return ocr.Line{}, false
	}
	line := ocr.Line{BoundingBox: box}

	var texts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			wordBox, ok := titleBox(attr(n, "title"))
			if !ok {
				return
			}
			word := ocr.Word{
				BoundingBox: wordBox,
				Text:        strings.TrimSpace(nodeText(n)),
				Confidence:  wordConfidence(attr(n, "title")),
			}
			if word.Text != "" {
				line.Words = append(line.Words, word)
				texts = append(texts, word.Text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	line.Text = strings.Join(texts, " ")
	return line, len(line.Words) > 0
}

// titleBox extracts the bbox property from an hOCR title attribute, e.g.
// "bbox 100 200 300 400; x_wconf 95", as an 8-number box.
func titleBox(title string) ([]float64, bool) {
	fields, ok := titleProperty(title, "bbox")
	if !ok || len(fields) < 4 {
		return nil, false
	}
	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, false
		}
		coords[i] = v
	}
	x1, y1, x2, y2 := coords[0], coords[1], coords[2], coords[3]
	return ocr.Quad(x1, y1, x2-x1, y2-y1), true
}

// wordConfidence reads x_wconf (0-100) and normalizes it to 0-1.
func wordConfidence(title string) float64 {
	fields, ok := titleProperty(title, "x_wconf")
	if !ok || len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v / 100
}

// titleProperty returns the values of one semicolon-separated hOCR title
// property.
func titleProperty(title, key string) ([]string, bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 0 && fields[0] == key {
			return fields[1:], true
		}
	}
	return nil, false
}

// attr returns the value of a node attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether the node's class attribute contains name.
func hasClass(n *html.Node, name string) bool {
	for _, class := range strings.Fields(attr(n, "class")) {
		if class == name {
			return true
		}
	}
	return false
}

// nodeText concatenates all text under a node.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
