package siftlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// FileSink appends one line per record to a fixed path. The file is
// created on the first write and never truncated.
//
// When an append fails the line is written to the fallback console
// sink instead so the record is not lost. The first failure also
// emits a single [LOG ERROR] diagnostic naming the path and the
// underlying error; later failures fall back silently.
type FileSink struct {
	mu       sync.Mutex
	path     string
	fallback *ConsoleSink
	reported atomic.Bool
}

// NewFileSink returns a sink appending to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path, fallback: NewConsoleSink()}
}

// Write appends the formatted record, falling back to the console on
// failure.
func (s *FileSink) Write(r Record) {
	line := FormatLine(r)
	if err := s.append(line); err != nil {
		s.reportOnce(err)
		s.fallback.writeLine(line)
	}
}

func (s *FileSink) append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	return err
}

func (s *FileSink) reportOnce(err error) {
	if s.reported.CompareAndSwap(false, true) {
		s.fallback.writeLine(fmt.Sprintf(
			"[LOG ERROR] appending to %s failed: %v (further errors will be suppressed)",
			s.path, err))
	}
}
