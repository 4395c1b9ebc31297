package preview

import (
	"errors"
	"image"
	"os"
	"sort"
	"time"

	"avif-live/internal/models"
)

// manualScheduler runs callbacks only when the test advances its clock.
type manualScheduler struct {
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTask{due: s.now + d, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var due []*manualTask
		for _, t := range s.tasks {
			if !t.stopped && !t.fired && t.due <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
		next := due[0]
		s.now = next.due
		next.fired = true
		next.f()
	}
	s.now = target
}

func (s *manualScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type statusLine struct {
	message string
	tone    Tone
}

type fakeView struct {
	size      models.Size
	previews  []image.Image
	readouts  []int
	statuses  []statusLine
	errors    []error
	errTitles []string
	infos     []string
	prompts   []string
	respond   func() (Destination, error)
}

func (v *fakeView) ContainerSize() models.Size  { return v.size }
func (v *fakeView) ShowPreview(img image.Image) { v.previews = append(v.previews, img) }
func (v *fakeView) SetQualityReadout(q int)     { v.readouts = append(v.readouts, q) }
func (v *fakeView) SetStatus(msg string, tone Tone) {
	v.statuses = append(v.statuses, statusLine{msg, tone})
}
func (v *fakeView) ShowInfo(title, message string) { v.infos = append(v.infos, message) }
func (v *fakeView) ShowError(title string, err error) {
	v.errTitles = append(v.errTitles, title)
	v.errors = append(v.errors, err)
}

func (v *fakeView) ChooseSaveDestination(name string, callback func(Destination, error)) {
	v.prompts = append(v.prompts, name)
	if v.respond == nil {
		callback(nil, nil)
		return
	}
	callback(v.respond())
}

func (v *fakeView) lastStatus() statusLine {
	if len(v.statuses) == 0 {
		return statusLine{}
	}
	return v.statuses[len(v.statuses)-1]
}

type encodeCall struct {
	img     image.Image
	quality int
	effort  int
}

// fakeCodec returns quality-dependent payloads and decodes them back to an
// image the size of the last encoded input.
type fakeCodec struct {
	calls     []encodeCall
	encodeErr error
	decodeErr error
	lastSize  image.Rectangle
}

func (c *fakeCodec) Encode(img image.Image, quality, effort int) ([]byte, error) {
	c.calls = append(c.calls, encodeCall{img, quality, effort})
	if c.encodeErr != nil {
		return nil, c.encodeErr
	}
	c.lastSize = img.Bounds()
	return make([]byte, 1024+quality*100), nil
}

func (c *fakeCodec) Decode(data []byte) (image.Image, error) {
	if c.decodeErr != nil {
		return nil, c.decodeErr
	}
	return image.NewNRGBA(image.Rect(0, 0, c.lastSize.Dx(), c.lastSize.Dy())), nil
}

func (c *fakeCodec) Extension() string { return ".avif" }

type fakeResampler struct {
	calls []models.Size
	err   error
}

func (r *fakeResampler) Resize(img image.Image, w, h int) (image.Image, error) {
	r.calls = append(r.calls, models.NewSize(w, h))
	if r.err != nil {
		return nil, r.err
	}
	return image.NewNRGBA(image.Rect(0, 0, w, h)), nil
}

// fakeLoader serves fixed images by path.
type fakeLoader struct {
	files map[string]models.Size
}

func (l *fakeLoader) LoadPath(path string) (*models.LoadedImage, error) {
	size, ok := l.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &models.LoadedImage{
		Image:  image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height)),
		Source: path,
		Width:  size.Width,
		Height: size.Height,
	}, nil
}

func (l *fakeLoader) FromImage(img image.Image, source string) (*models.LoadedImage, error) {
	if img == nil {
		return nil, errors.New("no image data provided")
	}
	if source == "" {
		source = models.SourceClipboard
	}
	b := img.Bounds()
	return &models.LoadedImage{
		Image:  image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy())),
		Source: source,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// fileDestination writes straight to a file and removes it on Abort.
type fileDestination struct {
	f       *os.File
	closed  bool
	aborted bool
	failW   error
}

func newFileDestination(path string) (*fileDestination, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileDestination{f: f}, nil
}

func (d *fileDestination) Write(p []byte) (int, error) {
	if d.failW != nil {
		return 0, d.failW
	}
	return d.f.Write(p)
}

func (d *fileDestination) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.f.Close()
}

func (d *fileDestination) Location() string { return d.f.Name() }

func (d *fileDestination) Abort() error {
	d.aborted = true
	d.Close()
	return os.Remove(d.f.Name())
}
