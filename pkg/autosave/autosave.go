// Package autosave coordinates background persistence of a single editable
// document. Callers report edits with MarkChanged; the coordinator debounces
// them and runs the save function once typing pauses. A periodic flush acts
// as a safety net for documents that never go quiet, so unsaved work is
// never older than roughly the flush interval.
//
// At most one save runs at a time. The dirty flag is cleared before a save
// starts and restored if the save fails, so edits made while a save is in
// flight, and edits whose save failed, are always retried.
package autosave

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// SaveFunc persists the current state of the document. It is called from a
// background goroutine and must be safe to call concurrently with edits.
type SaveFunc func(ctx context.Context) error

// Notifier receives the outcome of each save attempt. Implementations must
// return quickly; they are called on the saving goroutine.
type Notifier interface {
	SaveSucceeded(at time.Time)
	SaveFailed(err error)
}

// Config tunes the coordinator intervals. Zero values fall back to the
// defaults served by the API's /api/config endpoint.
type Config struct {
	// DebounceDelay is how long after the last MarkChanged a save fires.
	DebounceDelay time.Duration
	// FlushInterval is the safety-net period. Each tick saves the document
	// if it is dirty and no save is already running.
	FlushInterval time.Duration
}

const (
	defaultDebounceDelay = 2 * time.Second
	defaultFlushInterval = 30 * time.Second
)

// ErrClosed is returned by SaveNow after the coordinator has been closed.
var ErrClosed = errors.New("autosave: coordinator closed")

// State is a snapshot of the coordinator.
type State struct {
	Dirty     bool
	Saving    bool
	LastSaved time.Time
	LastError error
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithNotifier registers a save-outcome listener.
func WithNotifier(n Notifier) Option {
	return func(c *Coordinator) { c.notify = n }
}

// WithLogger sets the logger. Save failures are logged at warn level.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

// Coordinator schedules saves for one document.
type Coordinator struct {
	save   SaveFunc
	notify Notifier
	log    *slog.Logger

	debounceDelay time.Duration
	flushInterval time.Duration

	// saveMu serializes save attempts. Background triggers use TryLock and
	// back off when a save is already running; SaveNow and Close wait.
	saveMu sync.Mutex

	mu        sync.Mutex
	dirty     bool
	saving    bool
	lastSaved time.Time
	lastErr   error
	timer     *time.Timer
	closed    bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a Coordinator and starts its periodic flush. The caller must
// Close it to stop the background goroutine.
func New(cfg Config, save SaveFunc, opts ...Option) *Coordinator {
	c := &Coordinator{
		save:          save,
		log:           slog.New(slog.DiscardHandler),
		debounceDelay: cfg.DebounceDelay,
		flushInterval: cfg.FlushInterval,
		done:          make(chan struct{}),
	}
	if c.debounceDelay <= 0 {
		c.debounceDelay = defaultDebounceDelay
	}
	if c.flushInterval <= 0 {
		c.flushInterval = defaultFlushInterval
	}
	for _, opt := range opts {
		opt(c)
	}

	c.wg.Add(1)
	go c.flushLoop()

	return c
}

// MarkChanged records an edit. The debounce timer restarts, so a burst of
// edits produces a single save once the burst ends. Calling it after Close
// is a no-op.
func (c *Coordinator) MarkChanged() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.dirty = true
	c.armDebounceLocked()
}

// armDebounceLocked (re)starts the debounce timer. Callers hold mu.
func (c *Coordinator) armDebounceLocked() {
	if c.timer == nil {
		c.timer = time.AfterFunc(c.debounceDelay, c.debounceFired)
		return
	}
	c.timer.Reset(c.debounceDelay)
}

// MarkSaved tells the coordinator the document was persisted through some
// other path. The dirty flag and any pending debounce are discarded.
func (c *Coordinator) MarkSaved() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dirty = false
	c.lastSaved = time.Now()
	c.lastErr = nil
	if c.timer != nil {
		c.timer.Stop()
	}
}

// SaveNow saves immediately, waiting for any in-flight save to finish first.
// It returns nil without calling the save function when the document is
// clean.
func (c *Coordinator) SaveNow(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()

	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	return c.runSave(ctx)
}

// Flush makes a final save attempt and reports whether unsaved changes
// remain afterwards. Intended for shutdown paths where the caller can only
// warn the user, not handle the error.
func (c *Coordinator) Flush(ctx context.Context) (unsaved bool) {
	c.saveMu.Lock()
	c.runSave(ctx) //nolint:errcheck // recorded in state
	c.saveMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// State returns a snapshot of the coordinator.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Dirty:     c.dirty,
		Saving:    c.saving,
		LastSaved: c.lastSaved,
		LastError: c.lastErr,
	}
}

// Close stops the background goroutine and performs a final save if the
// document is dirty. It is safe to call once; later calls return ErrClosed.
func (c *Coordinator) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
	}
	c.mu.Unlock()

	close(c.done)
	c.wg.Wait()

	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	return c.runSave(ctx)
}

func (c *Coordinator) flushLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.trySave()
		}
	}
}

// debounceFired runs on the timer goroutine after the debounce delay.
func (c *Coordinator) debounceFired() {
	c.trySave()
}

// trySave attempts a background save. If another save is already running it
// backs off; the dirty flag stays set and the flush ticker retries later.
func (c *Coordinator) trySave() {
	if !c.saveMu.TryLock() {
		return
	}
	defer c.saveMu.Unlock()

	c.runSave(context.Background()) //nolint:errcheck // recorded in state
}

// runSave performs one save attempt. Callers must hold saveMu.
func (c *Coordinator) runSave(ctx context.Context) error {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return nil
	}
	c.dirty = false
	c.saving = true
	c.mu.Unlock()

	err := c.save(ctx)
	now := time.Now()

	c.mu.Lock()
	c.saving = false
	if err != nil {
		c.dirty = true
		c.lastErr = err
	} else {
		c.lastSaved = now
		c.lastErr = nil
		// Edits made while this save ran left dirty set again. Re-arm the
		// debounce so they persist within a debounce delay rather than on
		// the next flush tick. Failed saves stay on the flush ticker.
		if c.dirty && !c.closed {
			c.armDebounceLocked()
		}
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Warn("autosave failed", slog.String("error", err.Error()))
		if c.notify != nil {
			c.notify.SaveFailed(err)
		}
		return err
	}

	if c.notify != nil {
		c.notify.SaveSucceeded(now)
	}
	return nil
}
