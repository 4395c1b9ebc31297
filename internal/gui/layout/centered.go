package layout

import (
	"fyne.io/fyne/v2"
)

// CenteredLayout places every visible object at its own minimum size, centred
// in the container and clipped to it. Unlike Fyne's center layout it reports
// a fixed minimum, so a large child never forces the window to grow.
type CenteredLayout struct {
	floor fyne.Size
}

func NewCenteredLayout(floor fyne.Size) *CenteredLayout {
	return &CenteredLayout{floor: floor}
}

func (cl *CenteredLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}

		size := obj.MinSize()
		if size.Width > containerSize.Width {
			size.Width = containerSize.Width
		}
		if size.Height > containerSize.Height {
			size.Height = containerSize.Height
		}

		obj.Resize(size)
		obj.Move(fyne.NewPos(
			(containerSize.Width-size.Width)/2,
			(containerSize.Height-size.Height)/2,
		))
	}
}

func (cl *CenteredLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return cl.floor
}
