package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackedSizeUnknownNeverMatches(t *testing.T) {
	var ts TrackedSize
	_, known := ts.Get()
	assert.False(t, known)
	assert.False(t, ts.WithinThreshold(NewSize(0, 0), 5))
}

func TestTrackedSizeThreshold(t *testing.T) {
	var ts TrackedSize
	ts.Set(NewSize(800, 600))

	assert.True(t, ts.WithinThreshold(NewSize(804, 596), 5))
	assert.False(t, ts.WithinThreshold(NewSize(805, 600), 5))
	assert.False(t, ts.WithinThreshold(NewSize(800, 594), 5))

	ts.Reset()
	assert.False(t, ts.WithinThreshold(NewSize(800, 600), 5))
}

func TestSizeDegenerate(t *testing.T) {
	assert.True(t, NewSize(1, 400).Degenerate())
	assert.True(t, NewSize(400, 0).Degenerate())
	assert.False(t, NewSize(2, 2).Degenerate())
}

func TestLoadedImageFromFile(t *testing.T) {
	var nilImage *LoadedImage
	assert.False(t, nilImage.FromFile())
	assert.False(t, (&LoadedImage{Source: SourceClipboard}).FromFile())
	assert.True(t, (&LoadedImage{Source: "/tmp/cat.png"}).FromFile())
}

func TestPreviewArtifactSizeKB(t *testing.T) {
	pa := PreviewArtifact{EncodedSize: 1536}
	assert.InDelta(t, 1.5, pa.SizeKB(), 1e-9)
}
