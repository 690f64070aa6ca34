package labelgen

import "github.com/gardar/labelsynth/pkg/ocr"

// FieldType is the semantic type of a field region.
type FieldType string

// Field types understood by the generator.
const (
	FieldTypeString        FieldType = "string"
	FieldTypeNumber        FieldType = "number"
	FieldTypeDate          FieldType = "date"
	FieldTypeTime          FieldType = "time"
	FieldTypeInteger       FieldType = "integer"
	FieldTypeSelectionMark FieldType = "selectionMark"
)

// FieldFormat refines a FieldType with a value format.
type FieldFormat string

// Field formats; which formats apply depends on the field type.
const (
	FormatNotSpecified  FieldFormat = "not-specified"
	FormatAlphanumeric  FieldFormat = "alphanumeric"
	FormatNoWhiteSpaces FieldFormat = "no-whitespaces"
	FormatCurrency      FieldFormat = "currency"
	FormatDMY           FieldFormat = "dmy"
	FormatMDY           FieldFormat = "mdy"
	FormatYMD           FieldFormat = "ymd"
)

// Tag is the semantic metadata attached to a field region.
type Tag struct {
	Name   string      `json:"name" yaml:"name"`
	Type   FieldType   `json:"type" yaml:"type"`
	Format FieldFormat `json:"format" yaml:"format"`
}

// Region is a user-authored annotation target on a page.
//
// BBox and CanvasBBox each hold four corner points (eight numbers, clockwise
// from the top-left, y increasing upward) describing the same rectangle in
// two coordinate spaces: BBox in document map units, CanvasBBox in the
// rendering surface's units. Both must be non-degenerate.
type Region struct {
	BBox       []float64 `json:"bbox" yaml:"bbox"`
	CanvasBBox []float64 `json:"canvasBbox" yaml:"canvasBbox"`
	Page       int       `json:"page" yaml:"page"`
	Tag        Tag       `json:"tag" yaml:"tag"`

	// OCRLine designates a reference line in the page read result for
	// scale estimation and font probing. -1 means sample randomly.
	OCRLine int `json:"ocrLine" yaml:"ocrLine"`
}

// TextStyle captures the rendering attributes of one generated sample.
// It is created once per generation and not mutated afterwards.
type TextStyle struct {
	Text        string  `json:"text"`
	FontWeight  int     `json:"fontWeight"`
	FontSize    string  `json:"fontSize"` // pixel size string, e.g. "14px"
	LineHeight  float64 `json:"lineHeight"`
	FontFamily  string  `json:"fontFamily"`
	Align       string  `json:"align"`
	Baseline    string  `json:"baseline"`
	OffsetX     float64 `json:"offsetX"` // map units from the region center
	OffsetY     float64 `json:"offsetY"` // map units from the region center, y down
	Rotation    float64 `json:"rotation"`
	Fill        string  `json:"fill"`
	OutlineFill string  `json:"outlineFill"`
}

// WordBox is one generated word with its box in both image-pixel and
// image-percentage coordinates.
type WordBox struct {
	Box        []float64 `json:"boundingBox"`
	PercentBox []float64 `json:"boundingBoxPercentage"`
	Text       string    `json:"text"`
}

// GeneratedBoxes is the geometric half of a generated annotation.
//
// Full is the region's own map-unit box, passed through unchanged. Lines are
// OCR-shaped line records (pixel coordinates, nested words, confidence 1.0)
// interchangeable with engine output. Words is the flat per-word list in
// generation order.
type GeneratedBoxes struct {
	Full  []float64  `json:"full"`
	Lines []ocr.Line `json:"lines"`
	Words []WordBox  `json:"words"`
}

// GeneratedInfo is the complete output record for one region.
type GeneratedInfo struct {
	Name  string         `json:"name"`
	Text  string         `json:"text"`
	Boxes GeneratedBoxes `json:"boundingBoxes"`
	Style TextStyle      `json:"format"`
	Page  int            `json:"page"`
}

// TagProposal is advisory metadata proposed for a freshly drawn region.
type TagProposal struct {
	Proposal Tag `json:"tagProposal"`

	// OCRLine is the index of the line that anchored the proposal,
	// or -1 when nothing was found nearby.
	OCRLine int `json:"ocrLine"`
}
