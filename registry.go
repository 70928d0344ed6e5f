// Package siftlog is a filterable, multi-sink logging registry. Log
// calls fan out to every registered Logger; each Logger gates records
// through a removable set of filters before handing them to its sink.
package siftlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Config describes a Logger to be started by a Registry.
//
// When Levels is non-empty it wins over MinLevel; when neither is set
// no level filter is installed and all levels pass. The Components
// allow-list is always installed as one filter (an empty list passes
// everything). Extra Filters are appended after the built-in ones.
type Config struct {
	Sink       Sink
	Mode       Mode
	Levels     []Level
	MinLevel   Level
	Components []string
	Filters    []Filter
}

// Stats is a snapshot of registry activity counters.
type Stats struct {
	Records   int64 // records fanned out so far
	Delivered int64 // individual sink writes across all loggers
	Loggers   int   // currently registered loggers
}

// Registry fans every Log call out to its registered Loggers. All
// methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loggers map[uuid.UUID]*Logger

	records   atomic.Int64
	delivered atomic.Int64
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[uuid.UUID]*Logger)}
}

// StartLogger constructs a Logger from cfg, registers it for fan-out
// and returns it. The returned Logger's Stop method unregisters it.
func (r *Registry) StartLogger(cfg Config) *Logger {
	id := uuid.New()
	l := newLogger(cfg.Sink, cfg.Mode, func() { r.remove(id) })

	if len(cfg.Levels) > 0 {
		l.AddFilter(SelectedLevelsFilter(cfg.Levels...))
	} else if cfg.MinLevel != 0 {
		l.AddFilter(MinLevelFilter(cfg.MinLevel))
	}
	l.AddFilter(ComponentsFilter(cfg.Components...))
	for _, f := range cfg.Filters {
		l.AddFilter(f)
	}

	r.mu.Lock()
	r.loggers[id] = l
	r.mu.Unlock()
	return l
}

func (r *Registry) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.loggers, id)
	r.mu.Unlock()
}

// Log formats the payload once and delivers the record to every
// registered Logger. There is no ordering guarantee across loggers. A
// panicking sink is isolated with a stderr diagnostic so the remaining
// loggers still receive the record.
func (r *Registry) Log(opts Options, args ...interface{}) {
	rec := newRecord(opts, args)
	r.records.Add(1)

	r.mu.RLock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.mu.RUnlock()

	for _, l := range loggers {
		r.dispatch(l, rec)
	}
}

func (r *Registry) dispatch(l *Logger, rec Record) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "siftlog: sink panic isolated: %v\n", err)
		}
	}()
	if l.Dispatch(rec) {
		r.delivered.Add(1)
	}
}

// Reset unregisters every Logger. Already-returned Logger instances
// keep their filters and sink and still work when logged to directly;
// they simply stop receiving fan-out.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.loggers = make(map[uuid.UUID]*Logger)
	r.mu.Unlock()
}

// Stats returns current activity counters.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	n := len(r.loggers)
	r.mu.RUnlock()
	return Stats{
		Records:   r.records.Load(),
		Delivered: r.delivered.Load(),
		Loggers:   n,
	}
}
