package siftlog

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// FilterHandle is an opaque token identifying a filter previously
// added to a Logger. Handles are minted by AddFilter and are never
// equal to one another, even when created for identical filters.
type FilterHandle struct {
	id uuid.UUID
}

// Mode selects how a Logger combines its filters.
type Mode string

const (
	// ModeAll passes a record only when every filter passes.
	ModeAll Mode = "all"
	// ModeAny passes a record when at least one filter passes.
	ModeAny Mode = "any"
)

// Logger binds one sink to a removable set of filters and a
// combination mode. A Logger with no filters passes every record.
// All methods are safe for concurrent use; the sink is fixed at
// construction time.
type Logger struct {
	mu      sync.RWMutex
	sink    Sink
	filters map[FilterHandle]Filter
	mode    Mode

	accepted atomic.Int64
	stop     func()
}

func newLogger(sink Sink, mode Mode, stop func()) *Logger {
	if mode != ModeAny {
		mode = ModeAll
	}
	return &Logger{
		sink:    sink,
		filters: make(map[FilterHandle]Filter),
		mode:    mode,
		stop:    stop,
	}
}

// NewLogger creates a standalone Logger that is not attached to any
// registry. Stop is a no-op on standalone loggers.
func NewLogger(sink Sink, mode Mode) *Logger {
	return newLogger(sink, mode, nil)
}

// Log formats the payload and dispatches the resulting record.
func (l *Logger) Log(opts Options, args ...interface{}) {
	l.Dispatch(newRecord(opts, args))
}

// Dispatch applies the combination policy and, on pass, writes the
// record to the sink exactly once. It reports whether the record was
// written. Panics from caller-supplied filters are not recovered; a
// throwing filter is a caller bug.
func (l *Logger) Dispatch(r Record) bool {
	if !l.pass(r) {
		return false
	}
	l.accepted.Add(1)
	l.sink.Write(r)
	return true
}

func (l *Logger) pass(r Record) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.filters) == 0 {
		return true
	}
	if l.mode == ModeAny {
		for _, f := range l.filters {
			if f(r) {
				return true
			}
		}
		return false
	}
	for _, f := range l.filters {
		if !f(r) {
			return false
		}
	}
	return true
}

// AddFilter registers a filter and returns the handle that removes it.
// Filters with identical behavior are independent entries.
func (l *Logger) AddFilter(f Filter) FilterHandle {
	h := FilterHandle{id: uuid.New()}
	l.mu.Lock()
	l.filters[h] = f
	l.mu.Unlock()
	return h
}

// RemoveFilter removes the filter behind the handle and reports
// whether one was actually present. Removing the same handle twice
// returns false the second time.
func (l *Logger) RemoveFilter(h FilterHandle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.filters[h]; !ok {
		return false
	}
	delete(l.filters, h)
	return true
}

// ClearFilters drops every filter, returning the Logger to its
// always-pass state.
func (l *Logger) ClearFilters() {
	l.mu.Lock()
	l.filters = make(map[FilterHandle]Filter)
	l.mu.Unlock()
}

// Accepted returns the number of records this Logger has written to
// its sink.
func (l *Logger) Accepted() int64 {
	return l.accepted.Load()
}

// Stop unregisters the Logger from the registry that started it. The
// Logger keeps working when logged to directly; it merely stops
// receiving registry fan-out.
func (l *Logger) Stop() {
	if l.stop != nil {
		l.stop()
	}
}
