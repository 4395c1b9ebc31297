package gui

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"avif-live/internal/logger"

	"golang.design/x/clipboard"
)

// ClipboardReader yields the bitmap on the clipboard, if there is one.
type ClipboardReader interface {
	ReadImage() (image.Image, bool)
}

// SystemClipboard reads the OS clipboard. An unavailable clipboard behaves
// like an empty one.
type SystemClipboard struct {
	logger  logger.Logger
	once    sync.Once
	initErr error
}

func NewSystemClipboard(log logger.Logger) *SystemClipboard {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &SystemClipboard{logger: log}
}

func (c *SystemClipboard) ReadImage() (image.Image, bool) {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
		if c.initErr != nil {
			c.logger.Warning("Clipboard", "clipboard unavailable", map[string]interface{}{
				"error": c.initErr.Error(),
			})
		}
	})
	if c.initErr != nil {
		return nil, false
	}

	img, err := decodeClipboardImage(clipboard.Read(clipboard.FmtImage))
	if err != nil {
		c.logger.Debug("Clipboard", "clipboard image undecodable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	return img, img != nil
}

// decodeClipboardImage returns nil for an empty payload.
func decodeClipboardImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return png.Decode(bytes.NewReader(data))
}
