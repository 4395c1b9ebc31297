package services

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"avif-live/internal/opencv/conversion"
	"avif-live/internal/opencv/safe"
)

// LanczosResampler resizes with OpenCV's 8x8 Lanczos kernel.
type LanczosResampler struct{}

func NewLanczosResampler() *LanczosResampler {
	return &LanczosResampler{}
}

func (r *LanczosResampler) Resize(img image.Image, width, height int) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("resize: nil image")
	}
	if err := safe.ValidateDimensions(width, height, "resize"); err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img, nil
	}

	src, err := conversion.ImageToBGR(img)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	if err := safe.ValidateMat(src, 3, "resize"); err != nil {
		return nil, err
	}

	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationLanczos4)
	if err := safe.ValidateMat(dst, 3, "resize result"); err != nil {
		return nil, err
	}

	out, err := conversion.BGRToNRGBA(dst)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	return out, nil
}
