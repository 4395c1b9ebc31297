package gui

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
)

type fakeActions struct {
	qualities []float64
	resizes   int
	paths     []string
	images    []image.Image
	sources   []string
	saves     int
}

func (f *fakeActions) OnQualityChanged(value float64) { f.qualities = append(f.qualities, value) }
func (f *fakeActions) OnWindowResized()               { f.resizes++ }
func (f *fakeActions) Save()                          { f.saves++ }

func (f *fakeActions) LoadPath(path string) error {
	f.paths = append(f.paths, path)
	return nil
}

func (f *fakeActions) LoadImage(img image.Image, source string) error {
	f.images = append(f.images, img)
	f.sources = append(f.sources, source)
	return nil
}

type fakeClipboard struct {
	img   image.Image
	reads int
}

func (f *fakeClipboard) ReadImage() (image.Image, bool) {
	f.reads++
	return f.img, f.img != nil
}

// fileWriter is a URIWriteCloser over a local file.
type fileWriter struct {
	*os.File
	uri    fyne.URI
	closes int
}

func (w *fileWriter) URI() fyne.URI { return w.uri }

func (w *fileWriter) Close() error {
	w.closes++
	return w.File.Close()
}
