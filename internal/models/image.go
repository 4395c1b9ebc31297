package models

import (
	"image"
	"time"
)

// SourceClipboard labels images that did not come from a file.
const SourceClipboard = "clipboard"

// LoadedImage is the full-resolution original. Pix is opaque 8-bit RGB
// stored as NRGBA with alpha fixed at 255. It is never mutated after load.
type LoadedImage struct {
	Image    *image.NRGBA
	Source   string
	Format   string
	Width    int
	Height   int
	LoadTime time.Time
}

// FromFile reports whether the image has a path on disk.
func (li *LoadedImage) FromFile() bool {
	return li != nil && li.Source != "" && li.Source != SourceClipboard
}

// EncodeParameters pairs the user-controlled quality with the two fixed
// effort levels.
type EncodeParameters struct {
	Quality       int
	PreviewEffort int
	SaveEffort    int
}

// PreviewArtifact is the loaded image after a codec round trip.
type PreviewArtifact struct {
	Image       image.Image
	EncodedSize int
	Quality     int
}

// SizeKB is the encoded size in kilobytes (1024 bytes).
func (pa *PreviewArtifact) SizeKB() float64 {
	return float64(pa.EncodedSize) / 1024
}

// Size is a width/height pair in display units.
type Size struct {
	Width  int
	Height int
}

func NewSize(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Degenerate reports a region that has not been laid out yet.
func (s Size) Degenerate() bool {
	return s.Width <= 1 || s.Height <= 1
}

// TrackedSize is the last container size a render used. The zero value is
// the "unknown" state.
type TrackedSize struct {
	size  Size
	known bool
}

func (t *TrackedSize) Set(s Size) {
	t.size = s
	t.known = true
}

func (t *TrackedSize) Reset() {
	*t = TrackedSize{}
}

func (t TrackedSize) Get() (Size, bool) {
	return t.size, t.known
}

// WithinThreshold reports whether s differs from the tracked size by less
// than threshold in both dimensions. An unknown size never matches.
func (t TrackedSize) WithinThreshold(s Size, threshold int) bool {
	if !t.known {
		return false
	}
	return absInt(s.Width-t.size.Width) < threshold && absInt(s.Height-t.size.Height) < threshold
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
