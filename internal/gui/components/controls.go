package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type ControlsPanel struct {
	container     *fyne.Container
	qualitySlider *widget.Slider
	qualityValue  *widget.Label
	selectButton  *widget.Button
	saveButton    *widget.Button

	qualityChangeHandler func(float64)
	imageLoadHandler     func()
	imageSaveHandler     func()
}

func NewControlsPanel(initialQuality int) *ControlsPanel {
	panel := &ControlsPanel{}
	panel.setupControls(initialQuality)
	return panel
}

func (cp *ControlsPanel) setupControls(initialQuality int) {
	cp.qualityValue = widget.NewLabelWithStyle(strconv.Itoa(initialQuality), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	cp.qualitySlider = widget.NewSlider(0, 100)
	cp.qualitySlider.Step = 1
	cp.qualitySlider.SetValue(float64(initialQuality))
	cp.qualitySlider.OnChanged = cp.onQualityChanged

	qualityRow := container.NewBorder(
		nil, nil,
		widget.NewLabel("AVIF Quality:"),
		cp.qualityValue,
		cp.qualitySlider,
	)

	cp.selectButton = widget.NewButton("Select Image", cp.onImageLoad)
	cp.saveButton = widget.NewButton("Save AVIF File", cp.onImageSave)
	cp.saveButton.Importance = widget.HighImportance

	cp.container = container.NewVBox(
		qualityRow,
		container.NewGridWithColumns(2, cp.selectButton, cp.saveButton),
	)
}

func (cp *ControlsPanel) onQualityChanged(value float64) {
	if cp.qualityChangeHandler != nil {
		cp.qualityChangeHandler(value)
	}
}

func (cp *ControlsPanel) onImageLoad() {
	if cp.imageLoadHandler != nil {
		cp.imageLoadHandler()
	}
}

func (cp *ControlsPanel) onImageSave() {
	if cp.imageSaveHandler != nil {
		cp.imageSaveHandler()
	}
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

func (cp *ControlsPanel) SetQualityChangeHandler(handler func(float64)) {
	cp.qualityChangeHandler = handler
}

func (cp *ControlsPanel) SetImageLoadHandler(handler func()) {
	cp.imageLoadHandler = handler
}

func (cp *ControlsPanel) SetImageSaveHandler(handler func()) {
	cp.imageSaveHandler = handler
}

func (cp *ControlsPanel) SetQualityReadout(quality int) {
	cp.qualityValue.SetText(strconv.Itoa(quality))
}

func (cp *ControlsPanel) QualityReadout() string {
	return cp.qualityValue.Text
}

func (cp *ControlsPanel) Slider() *widget.Slider {
	return cp.qualitySlider
}

func (cp *ControlsPanel) SelectButton() *widget.Button {
	return cp.selectButton
}

func (cp *ControlsPanel) SaveButton() *widget.Button {
	return cp.saveButton
}
