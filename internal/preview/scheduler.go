package preview

import "time"

// Timer is a pending deferred callback.
type Timer interface {
	Stop() bool
}

// Scheduler defers callbacks. Implementations must run f on the UI goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Debouncer holds at most one pending callback. Triggering again cancels the
// previous one and restarts the quiet period. All methods must be called from
// the UI goroutine.
type Debouncer struct {
	scheduler Scheduler
	delay     time.Duration
	timer     Timer
	gen       uint64
}

func NewDebouncer(s Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{scheduler: s, delay: delay}
}

func (d *Debouncer) Trigger(f func()) {
	d.Cancel()
	gen := d.gen
	d.timer = d.scheduler.AfterFunc(d.delay, func() {
		// a callback already queued on the UI goroutine can outlive Stop
		if gen != d.gen {
			return
		}
		d.timer = nil
		f()
	})
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Pending() bool {
	return d.timer != nil
}
