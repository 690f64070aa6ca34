package labelgen

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// Pixel font size search bounds. Candidate heights grow monotonically with
// the candidate size, so the search stops once the distance to the target
// increases; ties keep searching.
const (
	fontSizeSearchStart = 10
	fontSizeSearchLimit = 100
)

// sizeProbeText is measured when no reference line is designated. Balanced
// lower/upper case keeps the probe's ascent representative of mixed text.
const sizeProbeText = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// fontCalibration is the jittered style and the pixel font size whose
// measured text height best matches the region's estimated character height.
type fontCalibration struct {
	Weight     int
	LineHeight float64
	SizePx     float64
	FontSize   string // SizePx rendered as a pixel-unit string
}

// calibrateFont searches integer pixel sizes for the one whose measured
// ascent+descent is closest to the target height implied by the character
// scale and the caller's resolution (map units per device pixel). The
// region's font height is thereby resolution independent in map units.
func calibrateFont(cfg Config, rng *rand.Rand, m Measurer, region Region, page ocr.ReadResult, scale CharScale, resolution float64) (fontCalibration, error) {
	if resolution <= 0 {
		return fontCalibration{}, fmt.Errorf("resolution must be positive, got %g", resolution)
	}

	weight := int(math.Round(cfg.jitter(rng, float64(cfg.FontWeight), cfg.FontWeightJitter)))
	lineHeight := cfg.jitter(rng, cfg.LineHeight, cfg.LineHeightJitter)
	targetHeight := scale.Height / resolution

	probe := sizeProbeText
	if region.OCRLine >= 0 {
		probe = page.Lines[region.OCRLine].Text
	}

	bestSize := fontSizeSearchStart
	bestDist := math.Inf(1)
	for size := fontSizeSearchStart; size <= fontSizeSearchLimit; size++ {
		met, err := m.Measure(probe, FontDescriptor{
			Weight:     weight,
			SizePx:     float64(size),
			LineHeight: lineHeight,
			Family:     cfg.FontFamily,
		})
		if err != nil {
			return fontCalibration{}, fmt.Errorf("measuring size probe at %dpx: %w", size, err)
		}
		dist := math.Abs(met.Ascent + met.Descent - targetHeight)
		if dist < bestDist {
			bestSize, bestDist = size, dist
		} else if dist > bestDist {
			break
		}
	}

	sizePx := cfg.jitter(rng, float64(bestSize), cfg.FontSizeJitter)
	return fontCalibration{
		Weight:     weight,
		LineHeight: lineHeight,
		SizePx:     sizePx,
		FontSize:   strconv.FormatFloat(sizePx, 'f', -1, 64) + "px",
	}, nil
}
