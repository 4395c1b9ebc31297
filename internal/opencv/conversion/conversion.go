package conversion

import (
	"fmt"
	"image"
	"image/color"
	"runtime"

	"gocv.io/x/gocv"
)

// ImageToBGR packs img into a CV_8UC3 Mat in OpenCV's BGR channel order.
// Alpha is dropped; callers pass opaque images. The caller owns the Mat.
func ImageToBGR(img image.Image) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return gocv.NewMat(), fmt.Errorf("input image is empty: %dx%d", width, height)
	}

	data := make([]byte, width*height*3)
	switch src := img.(type) {
	case *image.NRGBA:
		packNRGBA(src, data)
	case *image.RGBA:
		packRGBA(src, data)
	default:
		packGeneric(img, data)
	}

	borrowed, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, data)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("mat creation failed: %w", err)
	}
	defer borrowed.Close()

	// the borrowed Mat points into Go memory; clone so OpenCV owns the pixels
	mat := borrowed.Clone()
	runtime.KeepAlive(data)
	return mat, nil
}

// BGRToNRGBA unpacks a CV_8UC3 Mat into an opaque NRGBA image.
func BGRToNRGBA(mat gocv.Mat) (*image.NRGBA, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("mat is empty")
	}
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported mat type %v, want CV_8UC3", mat.Type())
	}

	rows, cols := mat.Rows(), mat.Cols()
	data := mat.ToBytes()
	if len(data) < rows*cols*3 {
		return nil, fmt.Errorf("mat data too short: %d bytes for %dx%d", len(data), cols, rows)
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for i, j := 0, 0; i < rows*cols*3; i, j = i+3, j+4 {
		img.Pix[j+0] = data[i+2]
		img.Pix[j+1] = data[i+1]
		img.Pix[j+2] = data[i+0]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

func packNRGBA(src *image.NRGBA, dst []byte) {
	b := src.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			dst[i+0] = row[x*4+2]
			dst[i+1] = row[x*4+1]
			dst[i+2] = row[x*4+0]
			i += 3
		}
	}
}

func packRGBA(src *image.RGBA, dst []byte) {
	b := src.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := src.Pix[src.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			dst[i+0] = row[x*4+2]
			dst[i+1] = row[x*4+1]
			dst[i+2] = row[x*4+0]
			i += 3
		}
	}
}

func packGeneric(src image.Image, dst []byte) {
	b := src.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst[i+0] = c.B
			dst[i+1] = c.G
			dst[i+2] = c.R
			i += 3
		}
	}
}
