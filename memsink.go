package siftlog

import "sync"

// MemorySink keeps the most recent formatted lines in a fixed-size
// ring buffer together with per-level counters. Useful for crash-dump
// style retrieval and for capturing output in tests.
type MemorySink struct {
	mu     sync.RWMutex
	lines  []string
	next   int
	full   bool
	counts map[Level]int64
}

// NewMemorySink returns a sink retaining the last capacity lines. A
// non-positive capacity defaults to 256.
func NewMemorySink(capacity int) *MemorySink {
	if capacity <= 0 {
		capacity = 256
	}
	return &MemorySink{
		lines:  make([]string, capacity),
		counts: make(map[Level]int64),
	}
}

// Write stores the formatted record, evicting the oldest line once
// the buffer is full.
func (s *MemorySink) Write(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines[s.next] = FormatLine(r)
	s.next++
	if s.next == len(s.lines) {
		s.next = 0
		s.full = true
	}
	s.counts[r.Level]++
}

// Lines returns the retained lines, oldest first.
func (s *MemorySink) Lines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		return append([]string(nil), s.lines[:s.next]...)
	}
	out := make([]string, 0, len(s.lines))
	out = append(out, s.lines[s.next:]...)
	out = append(out, s.lines[:s.next]...)
	return out
}

// Len returns the number of retained lines.
func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.lines)
	}
	return s.next
}

// CountByLevel returns how many records of the given level have been
// written, including lines that have since been evicted.
func (s *MemorySink) CountByLevel(l Level) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[l]
}
