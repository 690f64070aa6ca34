package labelgen

import "github.com/gardar/labelsynth/pkg/ocr"

// Label is the export record for one generated field, in the shape label
// stores expect: one value entry per word with its percentage box.
type Label struct {
	Label string       `json:"label"`
	Key   *string      `json:"key"`
	Value []LabelValue `json:"value"`
}

// LabelValue is one labeled word.
type LabelValue struct {
	Page          int         `json:"page"`
	Text          string      `json:"text"`
	BoundingBoxes [][]float64 `json:"boundingBoxes"`
}

// ToLabel projects a generated annotation into its export record.
func ToLabel(info GeneratedInfo) Label {
	values := make([]LabelValue, 0, len(info.Boxes.Words))
	for _, word := range info.Boxes.Words {
		values = append(values, LabelValue{
			Page:          info.Page,
			Text:          word.Text,
			BoundingBoxes: [][]float64{word.PercentBox},
		})
	}
	return Label{
		Label: info.Name,
		Key:   nil,
		Value: values,
	}
}

// ToOCRLines returns the generated lines as read-result lines, ready to be
// spliced into a page's line list. Word confidences are fixed at 1.0 so the
// only way to tell the lines from engine output is by their provenance.
func ToOCRLines(info GeneratedInfo) []ocr.Line {
	lines := make([]ocr.Line, len(info.Boxes.Lines))
	copy(lines, info.Boxes.Lines)
	return lines
}
