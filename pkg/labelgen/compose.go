package labelgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// composeBoxes walks the styled text word by word and line by line and
// produces the geometric annotation: image-pixel boxes per word, percentage
// boxes alongside them, one envelope box per line and the untouched
// full-region box.
//
// Each word is anchored at the region's visual center plus the style
// offsets plus the accumulated line and word advances. The horizontal
// advance of a word is the measured width of all words placed before it on
// the line plus a trailing space. Measurements are taken in device pixels
// and folded into image pixels through the caller's resolution and the
// region's pixels-per-map-unit scale.
//
// Words are assumed to be placed strictly left to right without wrapping;
// the line envelope spans the first word's top-left corner to the last
// word's bottom-right corner.
func composeBoxes(cfg Config, m Measurer, region Region, style TextStyle, page ocr.ReadResult, scale CharScale, resolution float64) (GeneratedBoxes, error) {
	wScale, hScale, err := regionScale(region)
	if err != nil {
		return GeneratedBoxes{}, err
	}

	sizePx, err := parsePixelSize(style.FontSize)
	if err != nil {
		return GeneratedBoxes{}, err
	}
	desc := FontDescriptor{
		Weight:     style.FontWeight,
		SizePx:     sizePx,
		LineHeight: style.LineHeight,
		Family:     style.FontFamily,
	}

	// Reference ascent for top-baseline alignment. Words whose glyphs sit
	// lower than the probe are shifted down by the ascent difference.
	probe, err := m.Measure("M", desc)
	if err != nil {
		return GeneratedBoxes{}, fmt.Errorf("measuring alignment probe: %w", err)
	}

	centerX, centerY := mapBoxCenterPixels(region.BBox, wScale, hScale)
	anchorX := centerX + style.OffsetX*wScale
	anchorY := centerY + style.OffsetY*hScale
	lineAdvance := effectiveMapLineHeight(cfg, scale, style.LineHeight)

	boxes := GeneratedBoxes{Full: region.BBox}
	lineMapOffset := 0.0

	for _, lineText := range strings.Split(style.Text, "\n") {
		var lineWords []ocr.Word
		accumulated := ""

		for _, wordText := range strings.Split(lineText, " ") {
			if wordText == "" {
				continue
			}

			prefix, err := m.Measure(accumulated, desc)
			if err != nil {
				return GeneratedBoxes{}, fmt.Errorf("measuring line prefix: %w", err)
			}
			word, err := m.Measure(wordText, desc)
			if err != nil {
				return GeneratedBoxes{}, fmt.Errorf("measuring word %q: %w", wordText, err)
			}

			x := anchorX + prefix.Width*resolution*wScale
			y := anchorY + lineMapOffset*hScale + (probe.Ascent-word.Ascent)*resolution*hScale
			box := ocr.Quad(x, y,
				word.Width*resolution*wScale,
				(word.Ascent+word.Descent)*resolution*hScale)

			boxes.Words = append(boxes.Words, WordBox{
				Box:        box,
				PercentBox: percentBox(box, page.Width, page.Height),
				Text:       wordText,
			})
			lineWords = append(lineWords, ocr.Word{
				BoundingBox: box,
				Text:        wordText,
				Confidence:  1.0,
			})

			accumulated += wordText + " "
		}

		if len(lineWords) > 0 {
			first := lineWords[0].BoundingBox
			last := lineWords[len(lineWords)-1].BoundingBox
			boxes.Lines = append(boxes.Lines, ocr.Line{
				BoundingBox: []float64{
					first[0], first[1],
					last[4], first[1],
					last[4], last[5],
					first[0], last[5],
				},
				Text:  lineText,
				Words: lineWords,
			})
		}

		lineMapOffset += lineAdvance
	}

	return boxes, nil
}

// parsePixelSize reads a "<number>px" font size string.
func parsePixelSize(fontSize string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(fontSize, "px"), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid pixel font size %q", fontSize)
	}
	return v, nil
}
