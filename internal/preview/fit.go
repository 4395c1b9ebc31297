package preview

import (
	"math"

	"avif-live/internal/models"
)

// Placement is the scale-to-fit result for one render.
type Placement struct {
	Available models.Size
	Scale     float64
	Width     int
	Height    int
	Percent   int
}

// Fit scales native into container minus margin, preserving aspect ratio.
// The scale is clamped to [minScale, maxScale] and each output dimension is
// at least 1.
func Fit(native, container models.Size, margin int, minScale, maxScale float64) Placement {
	avail := models.NewSize(container.Width-margin, container.Height-margin)

	wRatio := float64(avail.Width) / float64(native.Width)
	hRatio := float64(avail.Height) / float64(native.Height)
	scale := math.Min(wRatio, hRatio)

	if scale > maxScale || math.IsNaN(scale) {
		scale = maxScale
	}
	if scale < minScale {
		scale = minScale
	}

	return Placement{
		Available: avail,
		Scale:     scale,
		Width:     max(1, int(float64(native.Width)*scale)),
		Height:    max(1, int(float64(native.Height)*scale)),
		Percent:   int(scale * 100),
	}
}
