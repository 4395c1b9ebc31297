package gui

import (
	"time"

	"avif-live/internal/preview"

	"fyne.io/fyne/v2"
)

// UIScheduler defers callbacks onto the Fyne UI goroutine.
type UIScheduler struct{}

func (UIScheduler) AfterFunc(d time.Duration, f func()) preview.Timer {
	return time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}
