package labelgen

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// CharScale is the estimated local text pitch of a region, in map units
// per character.
type CharScale struct {
	Width  float64
	Height float64
}

// estimateScale derives the map units per character around a region by
// sampling OCR evidence.
//
// When the region designates a reference line, only that line's words are
// measured. Otherwise SizingSamples lines are drawn uniformly at random with
// replacement from the page. Character width is each word's box width
// divided by its character count; the medians of widths and heights are
// robust against digit- or punctuation-only outliers. The pixel medians are
// folded into map units through the region's pixels-per-map-unit scale.
func estimateScale(cfg Config, rng *rand.Rand, region Region, page ocr.ReadResult) (CharScale, error) {
	wScale, hScale, err := regionScale(region)
	if err != nil {
		return CharScale{}, err
	}

	var lines []ocr.Line
	if region.OCRLine >= 0 {
		lines = []ocr.Line{page.Lines[region.OCRLine]}
	} else {
		if len(page.Lines) == 0 {
			return CharScale{}, fmt.Errorf("page %d has no ocr lines to sample", page.Page)
		}
		lines = make([]ocr.Line, 0, cfg.SizingSamples)
		for i := 0; i < cfg.SizingSamples; i++ {
			lines = append(lines, page.Lines[rng.Intn(len(page.Lines))])
		}
	}

	var widths, heights []float64
	for _, line := range lines {
		for _, word := range line.Words {
			chars := utf8.RuneCountInString(word.Text)
			if chars == 0 || len(word.BoundingBox) < 8 {
				continue
			}
			widths = append(widths, ocr.BoxWidth(word.BoundingBox)/float64(chars))
			heights = append(heights, ocr.BoxHeight(word.BoundingBox))
		}
	}
	if len(widths) == 0 {
		return CharScale{}, fmt.Errorf("no measurable ocr words in sampled lines of page %d", page.Page)
	}

	return CharScale{
		Width:  median(widths) / wScale * cfg.jitter(rng, 1, cfg.WidthScaleJitter),
		Height: median(heights) / hScale * cfg.jitter(rng, 1, cfg.HeightScaleJitter),
	}, nil
}
