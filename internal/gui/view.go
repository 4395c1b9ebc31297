// Package gui binds the preview controller to a Fyne window.
package gui

import (
	"image"
	"image/color"

	"avif-live/internal/codec"
	"avif-live/internal/errors"
	"avif-live/internal/gui/components"
	"avif-live/internal/gui/layout"
	"avif-live/internal/logger"
	"avif-live/internal/models"
	"avif-live/internal/preview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single application window. It implements preview.View.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	watcher       *layout.ResizeWatcher
	minimum       *canvas.Rectangle

	previewArea *components.PreviewArea
	controls    *components.ControlsPanel
	statusBar   *components.StatusBar

	actions   Actions
	clipboard ClipboardReader
	logger    logger.Logger
}

// NewMainView builds the layout and installs it as the window content.
func NewMainView(window fyne.Window, initialQuality int) *MainView {
	view := &MainView{
		window: window,
		logger: logger.NoOpLogger{},
	}

	view.initializeComponents(initialQuality)
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents(initialQuality int) {
	mv.previewArea = components.NewPreviewArea()
	mv.controls = components.NewControlsPanel(initialQuality)
	mv.statusBar = components.NewStatusBar()
	mv.watcher = layout.NewResizeWatcher(nil)
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		mv.controls.GetContainer(),
		mv.statusBar.GetContainer(),
	)

	body := container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		mv.previewArea.GetContainer(),
	)

	mv.minimum = canvas.NewRectangle(color.Transparent)
	mv.mainContainer = container.New(mv.watcher, mv.minimum, body)
	mv.window.SetContent(mv.mainContainer)
}

// SetMinContentSize stops the window from shrinking below size.
func (mv *MainView) SetMinContentSize(size fyne.Size) {
	mv.minimum.SetMinSize(size)
	mv.mainContainer.Refresh()
}

func (mv *MainView) GetMainContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) ContainerSize() models.Size {
	size := mv.previewArea.Size()
	return models.NewSize(int(size.Width), int(size.Height))
}

func (mv *MainView) ShowPreview(img image.Image) {
	mv.previewArea.SetImage(img)
}

func (mv *MainView) SetQualityReadout(quality int) {
	mv.controls.SetQualityReadout(quality)
}

func (mv *MainView) SetStatus(message string, tone preview.Tone) {
	mv.statusBar.SetStatus(message, importanceFor(tone))
}

func (mv *MainView) ShowError(title string, err error) {
	message := widget.NewLabel(errors.UserMessage(err))
	message.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(nil, nil, widget.NewIcon(theme.ErrorIcon()), nil, message)
	d := dialog.NewCustom(title, "OK", content, mv.window)
	d.Resize(fyne.NewSize(360, 0))
	d.Show()
}

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ChooseSaveDestination shows the save dialog filtered to the output format.
func (mv *MainView) ChooseSaveDestination(suggestedName string, callback func(preview.Destination, error)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			callback(nil, err)
			return
		}
		if writer == nil {
			callback(nil, nil)
			return
		}
		callback(NewURIDestination(writer), nil)
	}, mv.window)

	d.SetFilter(storage.NewExtensionFileFilter([]string{codec.Extension}))
	d.SetFileName(suggestedName)
	d.Resize(dialogSize)
	d.Show()
}

func importanceFor(tone preview.Tone) widget.Importance {
	switch tone {
	case preview.ToneSuccess:
		return widget.SuccessImportance
	case preview.ToneWarning:
		return widget.WarningImportance
	case preview.ToneError:
		return widget.DangerImportance
	case preview.ToneBusy:
		return widget.HighImportance
	default:
		return widget.MediumImportance
	}
}
