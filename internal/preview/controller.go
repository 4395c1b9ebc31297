// Package preview drives the live AVIF preview: it owns the loaded image and
// the quality setting, coalesces slider and resize events into renders, and
// performs the final high-effort save.
package preview

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"

	"avif-live/internal/config"
	"avif-live/internal/errors"
	"avif-live/internal/logger"
	"avif-live/internal/models"
)

const component = "PreviewController"

// Codec encodes to and decodes from the target format.
type Codec interface {
	Encode(img image.Image, quality, effort int) ([]byte, error)
	Decode(data []byte) (image.Image, error)
	Extension() string
}

// Loader produces normalized LoadedImages.
type Loader interface {
	LoadPath(path string) (*models.LoadedImage, error)
	FromImage(img image.Image, source string) (*models.LoadedImage, error)
}

type Resampler interface {
	Resize(img image.Image, width, height int) (image.Image, error)
}

// Destination receives the bytes of a final save.
type Destination interface {
	io.WriteCloser
	// Location names the destination for messages.
	Location() string
	// Abort closes the destination if needed and removes anything written.
	Abort() error
}

// Tone tags a status message so the view can colour it.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneWarning
	ToneError
	ToneBusy
)

// View is what the controller needs from the window.
type View interface {
	// ContainerSize is the committed size of the preview region.
	ContainerSize() models.Size
	ShowPreview(img image.Image)
	SetQualityReadout(quality int)
	SetStatus(message string, tone Tone)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	// ChooseSaveDestination prompts for a target. A nil Destination with a
	// nil error means the user cancelled.
	ChooseSaveDestination(suggestedName string, callback func(Destination, error))
}

type Dependencies struct {
	Loader    Loader
	Codec     Codec
	Resampler Resampler
	Scheduler Scheduler
	View      View
	Logger    logger.Logger
}

type Controller struct {
	cfg       config.Config
	loader    Loader
	codec     Codec
	resampler Resampler
	view      View
	logger    logger.Logger

	current  *models.LoadedImage
	params   models.EncodeParameters
	artifact *models.PreviewArtifact
	tracked  models.TrackedSize

	sliderRender  *Debouncer
	resizeRender  *Debouncer
	initialRender *Debouncer
}

func NewController(cfg config.Config, deps Dependencies) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if deps.Loader == nil || deps.Codec == nil || deps.Resampler == nil || deps.Scheduler == nil || deps.View == nil {
		return nil, fmt.Errorf("preview controller: missing dependency")
	}
	log := deps.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &Controller{
		cfg:       cfg,
		loader:    deps.Loader,
		codec:     deps.Codec,
		resampler: deps.Resampler,
		view:      deps.View,
		logger:    log,
		params: models.EncodeParameters{
			Quality:       cfg.DefaultQuality,
			PreviewEffort: cfg.PreviewEffort,
			SaveEffort:    cfg.SaveEffort,
		},
		sliderRender:  NewDebouncer(deps.Scheduler, cfg.Debounce),
		resizeRender:  NewDebouncer(deps.Scheduler, cfg.Debounce),
		initialRender: NewDebouncer(deps.Scheduler, cfg.LoadDelay),
	}, nil
}

func (c *Controller) Quality() int {
	return c.params.Quality
}

func (c *Controller) Current() *models.LoadedImage {
	return c.current
}

func (c *Controller) Artifact() *models.PreviewArtifact {
	return c.artifact
}

// OnQualityChanged updates the readout at once and schedules a forced render
// once the slider has been still for the debounce period.
func (c *Controller) OnQualityChanged(value float64) {
	q := int(value)
	if q < 0 {
		q = 0
	} else if q > 100 {
		q = 100
	}
	c.params.Quality = q
	c.view.SetQualityReadout(q)
	c.sliderRender.Trigger(func() { c.Render(true) })
}

// OnWindowResized must only be called for the top-level window.
func (c *Controller) OnWindowResized() {
	c.resizeRender.Trigger(func() { c.Render(false) })
}

// LoadPath replaces the current image with the file at path. On failure the
// current image is kept.
func (c *Controller) LoadPath(path string) error {
	loaded, err := c.loader.LoadPath(path)
	if err != nil {
		loadErr := errors.Load("load path", err)
		c.logger.Error(component, loadErr, map[string]interface{}{"path": path})
		c.view.SetStatus(loadErr.UserMsg, ToneError)
		return loadErr
	}
	c.install(loaded)
	return nil
}

// LoadImage replaces the current image with an in-memory bitmap.
func (c *Controller) LoadImage(img image.Image, source string) error {
	loaded, err := c.loader.FromImage(img, source)
	if err != nil {
		loadErr := errors.Load("load bitmap", err)
		c.logger.Error(component, loadErr, map[string]interface{}{"source": source})
		c.view.SetStatus(loadErr.UserMsg, ToneError)
		return loadErr
	}
	c.install(loaded)
	return nil
}

func (c *Controller) install(loaded *models.LoadedImage) {
	c.current = loaded
	c.artifact = nil
	c.tracked.Reset()
	c.initialRender.Trigger(func() { c.Render(true) })

	c.view.SetStatus(fmt.Sprintf("Loaded %s (%dx%d).", displayName(loaded), loaded.Width, loaded.Height), ToneInfo)
	c.logger.Info(component, "image installed", map[string]interface{}{
		"source": loaded.Source,
		"width":  loaded.Width,
		"height": loaded.Height,
	})
}

// Render re-encodes the current image at the current quality and shows the
// decoded result scaled to the container. Unforced renders are skipped when
// the container moved less than the threshold since the last render. It
// reports whether a new preview was presented.
func (c *Controller) Render(force bool) bool {
	if c.current == nil {
		return false
	}

	size := c.view.ContainerSize()
	if size.Degenerate() {
		c.logger.Debug(component, "container not laid out", map[string]interface{}{
			"width":  size.Width,
			"height": size.Height,
		})
		return false
	}
	if !force && c.artifact != nil && c.tracked.WithinThreshold(size, c.cfg.ResizeThreshold) {
		return false
	}

	startTime := time.Now()
	src := c.current.Image
	quality := c.params.Quality

	data, err := c.codec.Encode(src, quality, c.params.PreviewEffort)
	if err != nil {
		c.renderFailed("Error during preview conversion", errors.Encode("preview encode", err))
		return false
	}
	decoded, err := c.codec.Decode(data)
	if err != nil {
		c.renderFailed("Error during preview conversion", errors.Encode("preview decode", err))
		return false
	}

	bounds := decoded.Bounds()
	placement := Fit(models.NewSize(bounds.Dx(), bounds.Dy()), size, c.cfg.Margin, c.cfg.MinScale, c.cfg.MaxScale)

	resized, err := c.resampler.Resize(decoded, placement.Width, placement.Height)
	if err != nil {
		c.renderFailed("Error displaying image", fmt.Errorf("resize preview: %w", err))
		return false
	}

	c.artifact = &models.PreviewArtifact{Image: decoded, EncodedSize: len(data), Quality: quality}
	c.view.ShowPreview(resized)
	c.view.SetStatus(fmt.Sprintf("Previewing at %d%% (%.1f KB). Quality: %d",
		placement.Percent, c.artifact.SizeKB(), quality), ToneSuccess)
	c.tracked.Set(size)

	c.logger.Debug(component, "preview rendered", map[string]interface{}{
		"forced":      force,
		"quality":     quality,
		"bytes":       len(data),
		"scale":       placement.Scale,
		"display":     fmt.Sprintf("%dx%d", placement.Width, placement.Height),
		"container":   fmt.Sprintf("%dx%d", size.Width, size.Height),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	return true
}

func (c *Controller) renderFailed(prefix string, err error) {
	c.logger.Error(component, err, map[string]interface{}{"quality": c.params.Quality})
	c.view.SetStatus(fmt.Sprintf("%s: %v", prefix, unwrapCause(err)), ToneError)
}

// Save prompts for a destination and writes the original image encoded at
// the current quality with the high effort setting.
func (c *Controller) Save() {
	if c.current == nil {
		err := errors.NoImage("save")
		c.view.ShowError("Error", err)
		c.view.SetStatus(err.UserMsg, ToneError)
		return
	}

	c.view.ChooseSaveDestination(c.suggestedName(), func(dest Destination, err error) {
		if err != nil {
			saveErr := errors.SaveIO("choose destination", err)
			c.logger.Error(component, saveErr, nil)
			c.view.ShowError("Save Failed", saveErr)
			c.view.SetStatus("Save failed.", ToneError)
			return
		}
		if dest == nil {
			c.view.SetStatus("Save cancelled.", ToneWarning)
			return
		}
		c.writeFinal(dest)
	})
}

func (c *Controller) writeFinal(dest Destination) {
	startTime := time.Now()
	quality := c.params.Quality
	c.view.SetStatus("Saving final image...", ToneBusy)

	if err := c.encodeTo(dest, quality); err != nil {
		if abortErr := dest.Abort(); abortErr != nil {
			c.logger.Warning(component, "could not discard partial file", map[string]interface{}{
				"location": dest.Location(),
				"error":    abortErr.Error(),
			})
		}
		c.logger.Error(component, err, map[string]interface{}{"location": dest.Location()})
		c.view.ShowError("Conversion Failed", err)
		c.view.SetStatus("Save failed.", ToneError)
		return
	}

	c.logger.Info(component, "final image saved", map[string]interface{}{
		"location":    dest.Location(),
		"quality":     quality,
		"effort":      c.params.SaveEffort,
		"duration_ms": time.Since(startTime).Milliseconds(),
	})
	c.view.ShowInfo("Success", fmt.Sprintf("Image successfully saved as:\n%s", dest.Location()))
	c.view.SetStatus("Final file saved successfully!", ToneSuccess)
}

func (c *Controller) encodeTo(dest Destination, quality int) error {
	data, err := c.codec.Encode(c.current.Image, quality, c.params.SaveEffort)
	if err != nil {
		return errors.Encode("final encode", err)
	}
	if _, err := io.Copy(dest, bytes.NewReader(data)); err != nil {
		return errors.SaveIO("write", err)
	}
	if err := dest.Close(); err != nil {
		return errors.SaveIO("close", err)
	}
	return nil
}

func (c *Controller) suggestedName() string {
	ext := c.codec.Extension()
	if !c.current.FromFile() {
		return "image" + ext
	}
	base := filepath.Base(c.current.Source)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// Shutdown drops any pending render.
func (c *Controller) Shutdown() {
	pending := 0
	for _, d := range []*Debouncer{c.sliderRender, c.resizeRender, c.initialRender} {
		if d.Pending() {
			pending++
		}
		d.Cancel()
	}
	c.logger.Debug(component, "pending renders cancelled", map[string]interface{}{"pending": pending})
}

func displayName(li *models.LoadedImage) string {
	if li.FromFile() {
		return filepath.Base(li.Source)
	}
	return "pasted image"
}

func unwrapCause(err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) && e.Err != nil {
		return e.Err
	}
	return err
}
