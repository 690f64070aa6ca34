package labelgen

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// proposalThreshold is the initial nearest-neighbor search radius in map
// units (half an inch in the usual working unit).
const proposalThreshold = 1.0

// maxLineNameLength caps how long a line may be before the matching word's
// own text is used for the proposed name instead of the full line.
const maxLineNameLength = 20

// numericCues mark a line as labeling a numeric field. Matched
// case-insensitively against the full line text.
var numericCues = []string{"#", "number", "num.", "phone", "amount"}

var titleCaser = cases.Title(language.English)

// ProposeTag proposes name, type and format for a freshly drawn box by
// finding the nearest OCR word to the box's top-left corner.
//
// The search is a running minimum: the threshold shrinks to each closer
// match found, and every improvement refreshes the whole proposal. The
// drawn box and the read result must share a coordinate space. ProposeTag
// never fails; when nothing lies within the threshold the proposal is left
// at its defaults and OCRLine is -1.
func ProposeTag(bbox []float64, page ocr.ReadResult) TagProposal {
	proposal := TagProposal{
		Proposal: Tag{Type: FieldTypeString, Format: FormatAlphanumeric},
		OCRLine:  -1,
	}
	if len(bbox) < 8 {
		return proposal
	}

	refX, refY := bbox[0], bbox[1]
	threshold := proposalThreshold

	for lineIdx, line := range page.Lines {
		for _, word := range line.Words {
			wx, wy := ocr.BoxTopLeft(word.BoundingBox)
			dist := math.Hypot(wx-refX, wy-refY)
			if dist >= threshold {
				continue
			}
			threshold = dist

			nameSource := line.Text
			if len(line.Text) > maxLineNameLength {
				nameSource = word.Text
			}
			proposal.Proposal.Name = camelCase(nameSource)
			if hasNumericCue(line.Text) {
				proposal.Proposal.Type = FieldTypeNumber
				proposal.Proposal.Format = FormatNotSpecified
			} else {
				proposal.Proposal.Type = FieldTypeString
				proposal.Proposal.Format = FormatAlphanumeric
			}
			proposal.OCRLine = lineIdx
		}
	}

	return proposal
}

// hasNumericCue reports whether the line text contains any numeric cue.
func hasNumericCue(lineText string) bool {
	lower := strings.ToLower(lineText)
	for _, cue := range numericCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// camelCase folds arbitrary label text into a camel-cased identifier,
// dropping everything that is not a letter or digit.
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString(titleCaser.String(strings.ToLower(part)))
	}
	return b.String()
}
