package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const InitialStatus = "Ready. Load an image to begin."

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel(InitialStatus)
	statusLabel.Truncation = fyne.TextTruncateEllipsis

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		nil, nil,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus replaces the message; importance selects the text colour.
func (sb *StatusBar) SetStatus(status string, importance widget.Importance) {
	sb.statusLabel.Importance = importance
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Text() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) Importance() widget.Importance {
	return sb.statusLabel.Importance
}
