// Package codec wraps the AVIF encoder behind a quality/effort API.
package codec

import (
	"bytes"
	"fmt"
	"image"

	"github.com/gen2brain/avif"

	"avif-live/internal/logger"
)

const (
	MinQuality = 0
	MaxQuality = 100
	MinEffort  = 0
	MaxEffort  = 10

	Extension = ".avif"
)

// AVIF encodes and decodes AVIF images in memory.
type AVIF struct {
	logger logger.Logger
}

func NewAVIF(log logger.Logger) *AVIF {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &AVIF{logger: log}
}

// Encode compresses img at the given quality (0-100) and effort (0-10,
// higher is slower and smaller).
func (c *AVIF) Encode(img image.Image, quality, effort int) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("encode: nil image")
	}
	if quality < MinQuality || quality > MaxQuality {
		return nil, fmt.Errorf("encode: quality %d outside %d-%d", quality, MinQuality, MaxQuality)
	}
	if effort < MinEffort || effort > MaxEffort {
		return nil, fmt.Errorf("encode: effort %d outside %d-%d", effort, MinEffort, MaxEffort)
	}

	var buf bytes.Buffer
	opts := avif.Options{
		Quality:           quality,
		QualityAlpha:      quality,
		Speed:             SpeedForEffort(effort),
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	}
	if err := avif.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("encode avif: %w", err)
	}

	c.logger.Debug("AVIFCodec", "encoded", map[string]interface{}{
		"quality": quality,
		"effort":  effort,
		"bytes":   buf.Len(),
	})
	return buf.Bytes(), nil
}

func (c *AVIF) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode: empty input")
	}
	img, err := avif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode avif: %w", err)
	}
	return img, nil
}

func (c *AVIF) Extension() string {
	return Extension
}

// SpeedForEffort maps effort onto the encoder's speed scale, where 10 is
// fastest.
func SpeedForEffort(effort int) int {
	switch {
	case effort < MinEffort:
		effort = MinEffort
	case effort > MaxEffort:
		effort = MaxEffort
	}
	return MaxEffort - effort
}
