package gui

import (
	"image"
	"os"

	"avif-live/internal/errors"
	"avif-live/internal/logger"
	"avif-live/internal/models"
	"avif-live/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const component = "MainView"

var dialogSize = fyne.NewSize(700, 500)

// Actions are the user intents the window forwards. *preview.Controller
// satisfies it.
type Actions interface {
	OnQualityChanged(value float64)
	OnWindowResized()
	LoadPath(path string) error
	LoadImage(img image.Image, source string) error
	Save()
}

// Bind connects every input source of the window to actions: the quality
// slider, top-level resizes, the buttons, file drops and clipboard paste.
func (mv *MainView) Bind(actions Actions, clip ClipboardReader, log logger.Logger) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mv.actions = actions
	mv.clipboard = clip
	mv.logger = log

	mv.controls.SetQualityChangeHandler(actions.OnQualityChanged)
	mv.controls.SetImageLoadHandler(mv.showOpenDialog)
	mv.controls.SetImageSaveHandler(actions.Save)

	mv.watcher.SetOnResize(mv.handleResize)
	mv.window.SetOnDropped(mv.handleDrop)

	// The desktop driver reports Ctrl+V and Cmd+V as the paste shortcut.
	mv.window.Canvas().AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) {
		mv.paste()
	})
}

func (mv *MainView) handleResize(size fyne.Size) {
	if mv.actions == nil {
		return
	}
	mv.logger.Debug(component, "window resized", map[string]interface{}{
		"width":  size.Width,
		"height": size.Height,
	})
	mv.actions.OnWindowResized()
}

func (mv *MainView) handleDrop(_ fyne.Position, uris []fyne.URI) {
	if mv.actions == nil {
		return
	}
	path, ok := firstLocalFile(uris)
	if !ok {
		mv.logger.Debug(component, "drop ignored", map[string]interface{}{"items": len(uris)})
		return
	}
	_ = mv.actions.LoadPath(path)
}

func (mv *MainView) paste() {
	if mv.clipboard == nil || mv.actions == nil {
		return
	}
	img, ok := mv.clipboard.ReadImage()
	if !ok {
		mv.logger.Debug(component, "clipboard holds no image", nil)
		return
	}
	_ = mv.actions.LoadImage(img, models.SourceClipboard)
}

func (mv *MainView) showOpenDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Error", errors.Load("open dialog", err))
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if mv.actions != nil {
			_ = mv.actions.LoadPath(path)
		}
	}, mv.window)

	d.SetFilter(storage.NewExtensionFileFilter(services.InputExtensions))
	d.Resize(dialogSize)
	d.Show()
}

// firstLocalFile picks the first URI naming an existing regular local file.
func firstLocalFile(uris []fyne.URI) (string, bool) {
	for _, uri := range uris {
		if uri == nil || uri.Scheme() != "file" {
			continue
		}
		info, err := os.Stat(uri.Path())
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return uri.Path(), true
	}
	return "", false
}
