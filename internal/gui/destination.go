package gui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// URIDestination adapts a Fyne writer to preview.Destination.
type URIDestination struct {
	writer   fyne.URIWriteCloser
	closed   bool
	closeErr error
}

func NewURIDestination(writer fyne.URIWriteCloser) *URIDestination {
	return &URIDestination{writer: writer}
}

func (d *URIDestination) Write(p []byte) (int, error) {
	return d.writer.Write(p)
}

// Close is idempotent.
func (d *URIDestination) Close() error {
	if d.closed {
		return d.closeErr
	}
	d.closed = true
	d.closeErr = d.writer.Close()
	return d.closeErr
}

func (d *URIDestination) Location() string {
	uri := d.writer.URI()
	if uri.Scheme() == "file" {
		return uri.Path()
	}
	return uri.String()
}

// Abort closes the writer and deletes whatever it created.
func (d *URIDestination) Abort() error {
	_ = d.Close()

	uri := d.writer.URI()
	if uri.Scheme() == "file" {
		if err := os.Remove(uri.Path()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return storage.Delete(uri)
}
