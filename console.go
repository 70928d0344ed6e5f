package siftlog

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleSink writes one formatted line per record, to stderr by
// default.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink returns a sink that writes to stderr.
func NewConsoleSink() *ConsoleSink {
	return NewConsoleSinkTo(os.Stderr)
}

// NewConsoleSinkTo returns a sink that writes to w.
func NewConsoleSinkTo(w io.Writer) *ConsoleSink {
	return &ConsoleSink{out: w}
}

// Write renders the record and emits it as one line.
func (s *ConsoleSink) Write(r Record) {
	s.writeLine(FormatLine(r))
}

func (s *ConsoleSink) writeLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, line)
}
