package labelgen

import (
	"math"
	"math/rand"
)

// lengthLimits are the admissible text dimensions for a region: character
// counts per line (inclusive bounds) and line counts (high bound exclusive,
// so a high of 2 with a low of 1 always yields a single line). Offsets
// position the text relative to the region's visual center, in map units
// with y increasing downward.
type lengthLimits struct {
	WidthLow   int
	WidthHigh  int
	HeightLow  int
	HeightHigh int
	OffsetX    float64
	OffsetY    float64
}

// effectiveMapLineHeight is the vertical advance of one text line in map
// units. The leading scale corrects for the gap between the font's nominal
// line box and its visible glyph height.
func effectiveMapLineHeight(cfg Config, scale CharScale, lineHeight float64) float64 {
	return scale.Height * lineHeight * cfg.LeadingLineHeightScale
}

// computeLimits converts the region's map-unit extent and the calibrated
// character pitch into character-count and line-count bounds.
//
// The width bounds are a fixed linear heuristic on the region width; it is
// known to be rough for very long boxes but its exact shape is kept since
// consumers depend on it.
func computeLimits(cfg Config, rng *rand.Rand, region Region, scale CharScale, cal fontCalibration) lengthLimits {
	w, h := mapBoxExtent(region.BBox)
	lineHeight := effectiveMapLineHeight(cfg, scale, cal.LineHeight)

	limits := lengthLimits{
		WidthLow:  int(math.Round(w * cfg.WidthLowFactor / scale.Width)),
		WidthHigh: int(math.Round(w * cfg.WidthHighFactor / scale.Width)),
	}
	limits.HeightLow = int(math.Round(h * cfg.HeightLowFactor / lineHeight))
	if limits.HeightLow < 1 {
		limits.HeightLow = 1
	}
	limits.HeightHigh = int(math.Round(h * cfg.HeightHighFactor / lineHeight))
	if limits.HeightHigh < limits.HeightLow {
		limits.HeightHigh = limits.HeightLow
	}

	limits.OffsetX = -w/2 + cfg.OffsetX + cfg.jitter(rng, 0, cfg.OffsetXJitter)

	if region.Tag.Type == FieldTypeString {
		// Flowed from the top of the region. The nominal vertical
		// offset is authored y-up, the composition space is y-down.
		limits.OffsetY = -h/2 - cfg.OffsetY + cfg.jitter(rng, 0, cfg.OffsetYJitter)
	} else {
		// Short structured values are centered vertically and never
		// span lines.
		limits.HeightLow = 1
		limits.HeightHigh = 2
		limits.OffsetY = -scale.Height/2 + cfg.jitter(rng, 0, float64(limits.HeightHigh)*cfg.OffsetYJitter)
	}

	return limits
}
