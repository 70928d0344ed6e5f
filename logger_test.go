package siftlog

import "testing"

// countSink counts writes without rendering anything.
type countSink struct {
	n int
}

func (s *countSink) Write(Record) { s.n++ }

func TestLoggerNoFiltersAlwaysPasses(t *testing.T) {
	sink := &countSink{}
	l := NewLogger(sink, ModeAll)

	l.Log(Options{Level: LevelTrace}, "a")
	l.Log(Options{Level: LevelError, Component: "db"}, "b")
	l.Log(Options{Level: Level(123)}, "c")

	if sink.n != 3 {
		t.Errorf("expected 3 writes, got %d", sink.n)
	}
}

func TestLoggerModeAll(t *testing.T) {
	sink := &countSink{}
	l := NewLogger(sink, ModeAll)
	l.AddFilter(func(Record) bool { return true })
	l.AddFilter(func(Record) bool { return false })

	for _, level := range allLevels {
		l.Log(Options{Level: level}, "probe")
	}
	if sink.n != 0 {
		t.Errorf("mode=all with a false filter should never write, got %d writes", sink.n)
	}
}

func TestLoggerModeAny(t *testing.T) {
	sink := &countSink{}
	l := NewLogger(sink, ModeAny)
	l.AddFilter(func(Record) bool { return true })
	l.AddFilter(func(Record) bool { return false })

	for _, level := range allLevels {
		l.Log(Options{Level: level}, "probe")
	}
	if sink.n != len(allLevels) {
		t.Errorf("mode=any with a true filter should always write, got %d of %d", sink.n, len(allLevels))
	}
}

func TestRemoveFilter(t *testing.T) {
	l := NewLogger(&countSink{}, ModeAll)

	h := l.AddFilter(func(Record) bool { return false })
	if !l.RemoveFilter(h) {
		t.Error("first removal should return true")
	}
	if l.RemoveFilter(h) {
		t.Error("second removal of the same handle should return false")
	}

	// A handle minted by a different logger is never present.
	other := NewLogger(&countSink{}, ModeAll)
	foreign := other.AddFilter(func(Record) bool { return true })
	if l.RemoveFilter(foreign) {
		t.Error("removing a foreign handle should return false")
	}
}

func TestFilterHandlesAreUnique(t *testing.T) {
	l := NewLogger(&countSink{}, ModeAll)
	block := func(Record) bool { return false }

	h1 := l.AddFilter(block)
	h2 := l.AddFilter(block)
	if h1 == h2 {
		t.Fatal("handles for identical filters must differ")
	}

	// Removing one entry leaves the other in place.
	if !l.RemoveFilter(h1) {
		t.Fatal("expected first handle to be removable")
	}
	sink := &countSink{}
	l2 := NewLogger(sink, ModeAll)
	l2.AddFilter(block)
	l2.Log(Options{Level: LevelInfo}, "probe")
	if sink.n != 0 {
		t.Error("remaining identical filter should still block")
	}
}

func TestClearFiltersIdempotent(t *testing.T) {
	sink := &countSink{}
	l := NewLogger(sink, ModeAll)
	l.AddFilter(func(Record) bool { return false })

	l.ClearFilters()
	l.ClearFilters()

	l.Log(Options{Level: LevelTrace}, "probe")
	if sink.n != 1 {
		t.Errorf("cleared logger should always pass, got %d writes", sink.n)
	}
}

func TestDispatchReportsDelivery(t *testing.T) {
	l := NewLogger(&countSink{}, ModeAll)
	if !l.Dispatch(Record{Level: LevelInfo}) {
		t.Error("unfiltered dispatch should report delivery")
	}
	l.AddFilter(func(Record) bool { return false })
	if l.Dispatch(Record{Level: LevelInfo}) {
		t.Error("blocked dispatch should report no delivery")
	}
	if l.Accepted() != 1 {
		t.Errorf("Accepted() = %d, want 1", l.Accepted())
	}
}
