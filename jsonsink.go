package siftlog

import (
	"io"
	"sync"

	"github.com/valyala/fastjson"
)

// JSONSink renders records as one JSON object per line with ts, level,
// component and message fields. The component field is omitted when
// the record has none.
type JSONSink struct {
	mu    sync.Mutex
	out   io.Writer
	arena fastjson.Arena
	buf   []byte
}

// NewJSONSink returns a sink writing JSON lines to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{out: w}
}

// Write emits the record as a single JSON line.
func (s *JSONSink) Write(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := s.arena.NewObject()
	obj.Set("ts", s.arena.NewString(r.Time.UTC().Format(timeLayout)))
	obj.Set("level", s.arena.NewString(r.Level.String()))
	if r.Component != "" {
		obj.Set("component", s.arena.NewString(r.Component))
	}
	obj.Set("message", s.arena.NewString(r.Message))

	s.buf = obj.MarshalTo(s.buf[:0])
	s.buf = append(s.buf, '\n')
	s.out.Write(s.buf)
	s.arena.Reset()
}
