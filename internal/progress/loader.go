package progress

import (
	"context"
	"sync"
	"time"
)

// ImageState is the visible state of one lazy image load.
type ImageState struct {
	Loading  bool
	Image    string // base64 payload, empty until loaded
	Err      string // user-facing message, empty unless failed
	Progress int    // 0-100
}

// FetchFunc performs the actual image request.
type FetchFunc func(ctx context.Context) (string, error)

// The underlying request is atomic, so the bar is driven by a timer: a
// fixed step per tick, clamped below 100 until the request settles.
const (
	progressStep  = 5
	progressClamp = 95
)

type entry struct {
	state  ImageState
	done   chan struct{}
	cancel chan struct{}
}

// Loader runs per-entity image fetches with simulated progress. Entries are
// keyed by entity id; a key is fetched at most once and the cached state is
// reused afterwards, including after a failure.
type Loader struct {
	mu       sync.Mutex
	interval time.Duration
	entries  map[string]*entry
	closed   bool
}

// NewLoader creates a Loader whose progress ticker fires at the given
// interval.
func NewLoader(interval time.Duration) *Loader {
	return &Loader{
		interval: interval,
		entries:  make(map[string]*entry),
	}
}

// State returns the current state for a key, if a load was ever started.
func (l *Loader) State(key string) (ImageState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		return ImageState{}, false
	}
	return e.state, true
}

// Done returns a channel that is closed once the load for key has settled.
// It returns nil if no load was started for key.
func (l *Loader) Done(key string) <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		return nil
	}
	return e.done
}

// Load starts the fetch for key unless one was already started, and returns
// the current state. Repeated calls never re-fetch.
func (l *Loader) Load(ctx context.Context, key string, fetch FetchFunc) ImageState {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ImageState{}
	}
	if e, ok := l.entries[key]; ok {
		state := e.state
		l.mu.Unlock()
		return state
	}

	e := &entry{
		state:  ImageState{Loading: true, Progress: 0},
		done:   make(chan struct{}),
		cancel: make(chan struct{}),
	}
	l.entries[key] = e
	l.mu.Unlock()

	go l.tickProgress(key, e)
	go l.runFetch(ctx, key, e, fetch)

	return ImageState{Loading: true, Progress: 0}
}

// tickProgress advances the simulated progress until the fetch settles or
// the loader is closed.
func (l *Loader) tickProgress(key string, e *entry) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.cancel:
			return
		case <-ticker.C:
			l.mu.Lock()
			if !e.state.Loading {
				l.mu.Unlock()
				return
			}
			next := e.state.Progress + progressStep
			if next > progressClamp {
				next = progressClamp
			}
			e.state.Progress = next
			l.mu.Unlock()
			if next >= progressClamp {
				return
			}
		}
	}
}

func (l *Loader) runFetch(ctx context.Context, key string, e *entry, fetch FetchFunc) {
	image, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-e.cancel:
	default:
		close(e.cancel)
	}
	defer close(e.done)

	if l.closed {
		// Torn down mid-flight; the result has nowhere to go.
		return
	}

	if err != nil {
		e.state = ImageState{Err: err.Error(), Progress: 0}
		return
	}
	e.state = ImageState{Image: image, Progress: 100}
}

// Close cancels all progress tickers and discards results of in-flight
// fetches. Safe to call more than once.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	for _, e := range l.entries {
		if e.state.Loading {
			select {
			case <-e.cancel:
			default:
				close(e.cancel)
			}
		}
	}
}
