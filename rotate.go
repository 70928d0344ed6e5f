package siftlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/zstd"
)

// RotatingFileSink appends like FileSink but rotates the live file
// once it would exceed maxBytes. Rotated segments are zstd-compressed
// next to the live file as <path>.<unix-nanos>.zst; when maxBackups is
// positive, the oldest segments beyond that count are pruned after
// each rotation.
//
// Append failures use the same fallback contract as FileSink: the
// line goes to the console, with one [LOG ERROR] diagnostic on the
// first failure only.
type RotatingFileSink struct {
	mu         sync.Mutex
	path       string
	maxBytes   int64
	maxBackups int
	size       int64
	encoder    *zstd.Encoder
	fallback   *ConsoleSink
	reported   atomic.Bool
}

// NewRotatingFileSink returns a sink appending to path, rotating at
// maxBytes and retaining at most maxBackups compressed segments. A
// non-positive maxBytes disables rotation.
func NewRotatingFileSink(path string, maxBytes int64, maxBackups int) (*RotatingFileSink, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	s := &RotatingFileSink{
		path:       path,
		maxBytes:   maxBytes,
		maxBackups: maxBackups,
		encoder:    enc,
		fallback:   NewConsoleSink(),
	}
	if fi, err := os.Stat(path); err == nil {
		s.size = fi.Size()
	}
	return s, nil
}

// Write appends the formatted record, rotating first when the live
// file is full.
func (s *RotatingFileSink) Write(r Record) {
	line := FormatLine(r)
	if err := s.append(line); err != nil {
		s.reportOnce(err)
		s.fallback.writeLine(line)
	}
}

func (s *RotatingFileSink) append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxBytes > 0 && s.size > 0 && s.size+int64(len(line))+1 > s.maxBytes {
		if err := s.rotate(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := f.WriteString(line + "\n")
	s.size += int64(n)
	return err
}

// rotate compresses the live file into a timestamped segment and
// starts a fresh one. Caller holds the lock.
func (s *RotatingFileSink) rotate() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	compressed := s.encoder.EncodeAll(raw, make([]byte, 0, len(raw)))

	name := fmt.Sprintf("%s.%d.zst", s.path, time.Now().UnixNano())
	if err := os.WriteFile(name, compressed, 0644); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil {
		return err
	}
	s.size = 0
	s.prune()
	return nil
}

// prune removes the oldest compressed segments beyond maxBackups.
func (s *RotatingFileSink) prune() {
	if s.maxBackups <= 0 {
		return
	}
	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var stamps []int64
	for _, e := range entries {
		if ts, ok := segmentStamp(base, e.Name()); ok {
			stamps = append(stamps, ts)
		}
	}
	if len(stamps) <= s.maxBackups {
		return
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i] < stamps[j] })
	for _, ts := range stamps[:len(stamps)-s.maxBackups] {
		os.Remove(filepath.Join(dir, fmt.Sprintf("%s.%d.zst", base, ts)))
	}
}

// segmentStamp extracts the rotation timestamp from a segment name of
// the form <base>.<stamp>.zst.
func segmentStamp(base, name string) (int64, bool) {
	if !strings.HasPrefix(name, base+".") || !strings.HasSuffix(name, ".zst") {
		return 0, false
	}
	mid := strings.TrimSuffix(strings.TrimPrefix(name, base+"."), ".zst")
	ts, err := strconv.ParseInt(mid, 10, 64)
	if err != nil {
		return 0, false
	}
	return ts, true
}

func (s *RotatingFileSink) reportOnce(err error) {
	if s.reported.CompareAndSwap(false, true) {
		s.fallback.writeLine(fmt.Sprintf(
			"[LOG ERROR] appending to %s failed: %v (further errors will be suppressed)",
			s.path, err))
	}
}
