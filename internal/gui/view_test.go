package gui

import (
	"errors"
	"image"
	"testing"

	"avif-live/internal/gui/components"
	"avif-live/internal/preview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) (*MainView, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	mv := NewMainView(w, 50)
	w.Resize(fyne.NewSize(800, 700))
	return mv, w
}

func TestNewMainViewInstallsContent(t *testing.T) {
	mv, w := newTestView(t)

	assert.Same(t, mv.GetMainContainer(), w.Content())
	assert.Equal(t, components.InitialStatus, mv.statusBar.Text())
	assert.Equal(t, "50", mv.controls.QualityReadout())
	assert.True(t, mv.previewArea.PlaceholderVisible())
}

func TestSetMinContentSize(t *testing.T) {
	mv, _ := newTestView(t)

	mv.SetMinContentSize(fyne.NewSize(500, 600))
	minSize := mv.GetMainContainer().MinSize()

	assert.GreaterOrEqual(t, minSize.Width, float32(500))
	assert.GreaterOrEqual(t, minSize.Height, float32(600))
}

func TestContainerSizeTracksPreviewArea(t *testing.T) {
	mv, _ := newTestView(t)

	mv.GetMainContainer().Resize(fyne.NewSize(800, 700))
	size := mv.ContainerSize()

	assert.Greater(t, size.Width, 1)
	assert.Greater(t, size.Height, 1)
	assert.LessOrEqual(t, size.Width, 800)
	assert.Less(t, size.Height, 700)
}

func TestSetStatusMapsTones(t *testing.T) {
	mv, _ := newTestView(t)

	cases := []struct {
		tone preview.Tone
		want widget.Importance
	}{
		{preview.ToneInfo, widget.MediumImportance},
		{preview.ToneSuccess, widget.SuccessImportance},
		{preview.ToneWarning, widget.WarningImportance},
		{preview.ToneError, widget.DangerImportance},
		{preview.ToneBusy, widget.HighImportance},
	}
	for _, tc := range cases {
		mv.SetStatus("msg", tc.tone)
		assert.Equal(t, tc.want, mv.statusBar.Importance())
	}
	assert.Equal(t, "msg", mv.statusBar.Text())
}

func TestShowPreviewAndReadout(t *testing.T) {
	mv, _ := newTestView(t)

	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	mv.ShowPreview(img)
	mv.SetQualityReadout(88)

	assert.Same(t, img, mv.previewArea.Image())
	assert.False(t, mv.previewArea.PlaceholderVisible())
	assert.Equal(t, "88", mv.controls.QualityReadout())
}

func TestModalDialogsUseOverlay(t *testing.T) {
	mv, w := newTestView(t)

	mv.ShowError("Conversion Failed", errors.New("boom"))
	require.NotNil(t, w.Canvas().Overlays().Top())

	w.Canvas().Overlays().Remove(w.Canvas().Overlays().Top())
	mv.ShowInfo("Success", "Image successfully saved as:\n/tmp/a.avif")
	assert.NotNil(t, w.Canvas().Overlays().Top())
}
