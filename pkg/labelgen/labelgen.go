// Package labelgen synthesizes plausible ground-truth text and geometry for
// labeled regions on scanned documents.
//
// Given a user-drawn field region and the OCR read result for the
// surrounding page, the generator estimates the local text scale from
// nearby OCR evidence, calibrates a pixel font size against it, synthesizes
// text matching the field's declared type and format, and computes per-word
// and per-line bounding boxes in the same schema the OCR engine would have
// produced. The synthetic sample is indistinguishable in shape from real
// annotated data, which makes it usable as training input for recognition
// pipelines without manual transcription.
//
// Main entry points:
//
// - Generator.Generate: run the full pipeline for one region
// - ProposeTag: propose field metadata for a freshly drawn box
// - ToLabel / ToOCRLines: project a generated annotation for export
//
// All computation is pure and deterministic given the seed; the injected
// text measurement and string sampling capabilities are the only moving
// parts. A Generator is not safe for concurrent use since the random
// source and the measurement context are shared across its calls.
package labelgen

import (
	"fmt"
	"math/rand"

	"github.com/gardar/labelsynth/pkg/ocr"
)

// Fixed style attributes shared by every generated sample.
const (
	styleAlign    = "left"
	styleBaseline = "top"
	styleFill     = "rgb(42, 42, 42)"
	styleOutline  = ""
)

// Generator runs the generation pipeline with one configuration, one
// measurement capability and one random source.
type Generator struct {
	// Patterns and Words may be replaced before the first Generate call
	// to substitute the string sampling capabilities.
	Patterns PatternSampler
	Words    WordSampler

	cfg      Config
	measurer Measurer
	rng      *rand.Rand
}

// NewGenerator creates a Generator. The seed drives every random draw, so
// equal seeds with a deterministic measurer reproduce equal output.
func NewGenerator(cfg Config, m Measurer, seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		Patterns: NewRegexSampler(rng),
		Words:    NewFakerWords(seed),
		cfg:      cfg,
		measurer: m,
		rng:      rng,
	}
}

// Generate synthesizes one annotation for a region on a page.
//
// resolution is the ratio of map units to device pixels for the caller's
// rendering context. Degenerate region geometry and pages without
// measurable OCR words fail before any box math runs.
func (g *Generator) Generate(region Region, page ocr.ReadResult, resolution float64) (GeneratedInfo, error) {
	cfg := g.cfg

	if err := validateRegion(region, len(page.Lines)); err != nil {
		return GeneratedInfo{}, fmt.Errorf("cannot generate for %q: %w", region.Tag.Name, err)
	}

	scale, err := estimateScale(cfg, g.rng, region, page)
	if err != nil {
		return GeneratedInfo{}, fmt.Errorf("estimating text scale for %q: %w", region.Tag.Name, err)
	}

	cal, err := calibrateFont(cfg, g.rng, g.measurer, region, page, scale, resolution)
	if err != nil {
		return GeneratedInfo{}, fmt.Errorf("calibrating font for %q: %w", region.Tag.Name, err)
	}

	limits := computeLimits(cfg, g.rng, region, scale, cal)

	text, err := synthesizeText(cfg, g.rng, g.Patterns, g.Words, region.Tag, limits)
	if err != nil {
		return GeneratedInfo{}, fmt.Errorf("synthesizing text for %q: %w", region.Tag.Name, err)
	}

	style := TextStyle{
		Text:        text,
		FontWeight:  cal.Weight,
		FontSize:    cal.FontSize,
		LineHeight:  cal.LineHeight,
		FontFamily:  cfg.FontFamily,
		Align:       styleAlign,
		Baseline:    styleBaseline,
		OffsetX:     limits.OffsetX,
		OffsetY:     limits.OffsetY,
		Rotation:    0,
		Fill:        styleFill,
		OutlineFill: styleOutline,
	}

	boxes, err := composeBoxes(cfg, g.measurer, region, style, page, scale, resolution)
	if err != nil {
		return GeneratedInfo{}, fmt.Errorf("composing boxes for %q: %w", region.Tag.Name, err)
	}

	return GeneratedInfo{
		Name:  region.Tag.Name,
		Text:  text,
		Boxes: boxes,
		Style: style,
		Page:  region.Page,
	}, nil
}
