package layout

import (
	"fyne.io/fyne/v2"
)

// ResizeWatcher stacks its objects to fill the container and reports every
// change of the container size. Attached to the window content it observes
// top-level window resizes only.
type ResizeWatcher struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func NewResizeWatcher(onResize func(fyne.Size)) *ResizeWatcher {
	return &ResizeWatcher{onResize: onResize}
}

func (rw *ResizeWatcher) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}

	// Fyne re-lays out on refresh too; only real size changes count.
	if containerSize == rw.last {
		return
	}
	rw.last = containerSize
	if rw.onResize != nil {
		rw.onResize(containerSize)
	}
}

func (rw *ResizeWatcher) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}

// SetOnResize replaces the callback.
func (rw *ResizeWatcher) SetOnResize(onResize func(fyne.Size)) {
	rw.onResize = onResize
}
