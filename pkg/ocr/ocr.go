// Package ocr defines the read-result schema produced by OCR engines and
// consumed throughout labelsynth.
//
// The schema follows the common analyze/read response shape: a page carries
// its pixel dimensions and an ordered list of lines, each line an ordered
// list of words. Every bounding box is eight numbers describing the four
// corners of an axis-aligned rectangle, clockwise from the top-left:
//
//	x1 y1  x2 y2  x3 y3  x4 y4
//	TL     TR     BR     BL
//
// Synthetic annotations emitted by pkg/labelgen use the exact same shape so
// that downstream consumers cannot tell them apart from engine output.
package ocr

// ReadResult is the recognition output for a single page.
type ReadResult struct {
	Page   int     `json:"page"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit,omitempty"`
	Lines  []Line  `json:"lines"`
}

// Line is a recognized line of text with its word breakdown.
type Line struct {
	BoundingBox []float64 `json:"boundingBox"`
	Text        string    `json:"text"`
	Words       []Word    `json:"words"`
}

// Word is a single recognized word.
type Word struct {
	BoundingBox []float64 `json:"boundingBox"`
	Text        string    `json:"text"`
	Confidence  float64   `json:"confidence"`
}

// BoxWidth returns the horizontal extent of an 8-number bounding box.
func BoxWidth(box []float64) float64 {
	if len(box) < 8 {
		return 0
	}
	return box[2] - box[0]
}

// BoxHeight returns the vertical extent of an 8-number bounding box.
func BoxHeight(box []float64) float64 {
	if len(box) < 8 {
		return 0
	}
	return box[5] - box[1]
}

// BoxTopLeft returns the top-left corner of an 8-number bounding box.
func BoxTopLeft(box []float64) (x, y float64) {
	if len(box) < 8 {
		return 0, 0
	}
	return box[0], box[1]
}

// Quad builds an 8-number box from a top-left corner and extents, in the
// clockwise-from-top-left corner order used across the schema.
func Quad(x, y, w, h float64) []float64 {
	return []float64{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y + h,
	}
}
