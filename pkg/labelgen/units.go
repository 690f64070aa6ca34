package labelgen

import (
	"fmt"
)

// Map-unit boxes have y increasing upward while image pixels have y
// increasing downward, so every vertical conversion flips sign.

// regionScale derives the image-pixels-per-map-unit factors of a region
// from the ratio of its canvas-space extent to its map-space extent,
// independently per axis.
func regionScale(r Region) (wScale, hScale float64, err error) {
	bw, bh := mapBoxExtent(r.BBox)
	cw, ch := mapBoxExtent(r.CanvasBBox)
	if bw <= 0 || bh <= 0 {
		return 0, 0, fmt.Errorf("degenerate region bbox (%gx%g map units)", bw, bh)
	}
	if cw <= 0 || ch <= 0 {
		return 0, 0, fmt.Errorf("degenerate region canvas bbox (%gx%g units)", cw, ch)
	}
	return cw / bw, ch / bh, nil
}

// mapBoxExtent returns the width and height of an 8-number map-unit box
// (clockwise corners from the top-left, y up).
func mapBoxExtent(box []float64) (w, h float64) {
	if len(box) < 8 {
		return 0, 0
	}
	return box[2] - box[0], box[1] - box[5]
}

// mapBoxCenterPixels converts the center of a map-unit box into image
// pixel coordinates using the given per-axis scales.
func mapBoxCenterPixels(box []float64, wScale, hScale float64) (x, y float64) {
	cx := (box[0] + box[2]) / 2
	cy := (box[1] + box[5]) / 2
	return cx * wScale, -cy * hScale
}

// percentBox folds an image-pixel box into image-relative percentages,
// dividing x components by the image width and y components by the height.
func percentBox(box []float64, imageWidth, imageHeight float64) []float64 {
	out := make([]float64, len(box))
	for i, v := range box {
		if i%2 == 0 {
			out[i] = v / imageWidth
		} else {
			out[i] = v / imageHeight
		}
	}
	return out
}

// validateRegion rejects regions whose geometry would produce undefined
// scales, and reference line indexes outside the read result.
func validateRegion(r Region, lineCount int) error {
	if _, _, err := regionScale(r); err != nil {
		return err
	}
	if r.OCRLine >= lineCount {
		return fmt.Errorf("ocr line index %d out of range (page has %d lines)", r.OCRLine, lineCount)
	}
	return nil
}
