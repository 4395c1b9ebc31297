package components

import (
	"image"
	"image/color"

	"avif-live/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const Placeholder = "Drag & Drop an Image File Here\nor\nUse 'Select Image' Button\nor\nPaste an Image with Ctrl+V"

var previewBackground = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// PreviewArea is the expanding region that shows either the placeholder or the
// current preview, centred at its native size.
type PreviewArea struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder *widget.Label
}

func NewPreviewArea() *PreviewArea {
	background := canvas.NewRectangle(previewBackground)

	placeholder := widget.NewLabel(Placeholder)
	placeholder.Alignment = fyne.TextAlignCenter

	previewImage := canvas.NewImageFromImage(nil)
	previewImage.FillMode = canvas.ImageFillContain
	previewImage.ScaleMode = canvas.ImageScaleSmooth
	previewImage.Hide()

	content := container.New(layout.NewCenteredLayout(fyne.NewSize(1, 1)), placeholder, previewImage)

	return &PreviewArea{
		container:   container.NewStack(background, content),
		image:       previewImage,
		placeholder: placeholder,
	}
}

func (pa *PreviewArea) GetContainer() *fyne.Container {
	return pa.container
}

// Size is the committed size of the region.
func (pa *PreviewArea) Size() fyne.Size {
	return pa.container.Size()
}

// SetImage shows img at exactly its pixel dimensions.
func (pa *PreviewArea) SetImage(img image.Image) {
	if img == nil {
		return
	}

	bounds := img.Bounds()
	pa.image.Image = img
	pa.image.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	pa.placeholder.Hide()
	pa.image.Show()
	pa.image.Refresh()
	pa.container.Refresh()
}

func (pa *PreviewArea) Image() image.Image {
	return pa.image.Image
}

func (pa *PreviewArea) PlaceholderVisible() bool {
	return pa.placeholder.Visible()
}
