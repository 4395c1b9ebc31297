package services

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"avif-live/internal/logger"
	"avif-live/internal/models"
)

// InputExtensions are offered by the open dialog.
var InputExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp", ".gif", ".tif", ".tiff"}

// ImageService turns files and clipboard bitmaps into LoadedImages.
type ImageService struct {
	logger logger.Logger
}

func NewImageService(log logger.Logger) *ImageService {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ImageService{logger: log}
}

// LoadPath decodes the file at path and normalizes it.
func (s *ImageService) LoadPath(path string) (*models.LoadedImage, error) {
	startTime := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	loaded, err := s.build(img, path, formatFromPath(path))
	if err != nil {
		return nil, err
	}

	s.logger.Info("ImageService", "image loaded", map[string]interface{}{
		"path":        path,
		"width":       loaded.Width,
		"height":      loaded.Height,
		"format":      loaded.Format,
		"size_bytes":  info.Size(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	return loaded, nil
}

// FromImage normalizes an already decoded bitmap, e.g. from the clipboard.
func (s *ImageService) FromImage(img image.Image, source string) (*models.LoadedImage, error) {
	if img == nil {
		return nil, fmt.Errorf("no image data provided")
	}
	if source == "" {
		source = models.SourceClipboard
	}
	loaded, err := s.build(img, source, "bitmap")
	if err != nil {
		return nil, err
	}
	s.logger.Info("ImageService", "bitmap accepted", map[string]interface{}{
		"source": source,
		"width":  loaded.Width,
		"height": loaded.Height,
	})
	return loaded, nil
}

func (s *ImageService) build(img image.Image, source, format string) (*models.LoadedImage, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image has no pixels: %dx%d", bounds.Dx(), bounds.Dy())
	}

	normalized := Normalize(img)
	return &models.LoadedImage{
		Image:    normalized,
		Source:   source,
		Format:   format,
		Width:    normalized.Bounds().Dx(),
		Height:   normalized.Bounds().Dy(),
		LoadTime: time.Now(),
	}, nil
}

// Normalize returns an independent opaque copy of img anchored at (0,0).
// Alpha is discarded: each pixel keeps its straight RGB values at A=255.
func Normalize(img image.Image) *image.NRGBA {
	clone := imaging.Clone(img)
	if clone.Opaque() {
		return clone
	}
	for i := 3; i < len(clone.Pix); i += 4 {
		clone.Pix[i] = 0xff
	}
	return clone
}

func formatFromPath(path string) string {
	if f, err := imaging.FormatFromFilename(path); err == nil {
		return strings.ToLower(f.String())
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}
