package labelgen

import (
	"fmt"
	"io"
	"os"
)

// Config holds the generation constants and the jitter switch.
//
// The zero value is not usable; start from DefaultConfig. A Config is read
// once at the start of a generation call and never re-evaluated mid-call,
// so a shared Config must not be mutated while generations run.
type Config struct {
	// Jitter enables the bounded random perturbation of nominal
	// parameters. Disable for deterministic runs.
	Jitter bool

	// SizingSamples is how many lines are drawn (with replacement) from
	// the page when no reference line is designated.
	SizingSamples int

	// WidthScaleJitter and HeightScaleJitter perturb the nominal 1.0
	// scale factor applied to the estimated character pitch.
	WidthScaleJitter  float64
	HeightScaleJitter float64

	// Font style nominals and their jitter radii.
	FontWeight       int
	FontWeightJitter float64
	LineHeight       float64
	LineHeightJitter float64
	FontSizeJitter   float64
	FontFamily       string

	// LeadingLineHeightScale corrects for the gap between a font's
	// nominal line box and its visible glyph height.
	LeadingLineHeightScale float64

	// Character-count range factors applied to the region width, and
	// line-count range factors applied to the region height.
	WidthLowFactor   float64
	WidthHighFactor  float64
	HeightLowFactor  float64
	HeightHighFactor float64

	// Nominal text offsets from the region's top-left anchor, in map
	// units, with their jitter radii.
	OffsetX       float64
	OffsetXJitter float64
	OffsetY       float64
	OffsetYJitter float64

	// NaturalWords switches alphanumeric string synthesis from the
	// pattern sampler to the word sampler.
	NaturalWords bool

	// LogWarnings prints non-fatal conditions (such as grammar
	// fallbacks) to Logger. Logger nil means stdout.
	LogWarnings bool
	Logger      io.Writer
}

// DefaultConfig returns the generation constants used in production.
func DefaultConfig() Config {
	return Config{
		Jitter:                 true,
		SizingSamples:          12,
		WidthScaleJitter:       0.05,
		HeightScaleJitter:      0.05,
		FontWeight:             100,
		FontWeightJitter:       25,
		LineHeight:             1,
		LineHeightJitter:       0.3,
		FontSizeJitter:         1,
		FontFamily:             "sans-serif",
		LeadingLineHeightScale: 1.35,
		WidthLowFactor:         0.3,
		WidthHighFactor:        1.05,
		HeightLowFactor:        0.2,
		HeightHighFactor:       0.9,
		OffsetX:                5,
		OffsetXJitter:          20,
		OffsetY:                -3,
		OffsetYJitter:          3,
		NaturalWords:           false,
		LogWarnings:            true,
		Logger:                 nil,
	}
}

// StaticConfig returns the constants with jitter disabled, for
// deterministic debugging and tests.
func StaticConfig() Config {
	c := DefaultConfig()
	c.Jitter = false
	return c
}

// warnf reports a non-fatal condition to the configured logger.
func (c Config) warnf(format string, args ...interface{}) {
	if !c.LogWarnings {
		return
	}
	w := c.Logger
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
