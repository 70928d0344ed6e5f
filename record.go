package siftlog

import (
	"fmt"
	"strings"
	"time"
)

// Record is a single log entry after payload formatting. The message
// is rendered once per log call and shared by every logger and sink.
type Record struct {
	Time      time.Time
	Level     Level
	Component string
	Message   string
}

// Options carries the per-call settings of a Log call.
type Options struct {
	Level     Level
	Component string
}

// Filter decides whether a record passes. Filters must be pure:
// evaluating one never mutates state and never has side effects.
type Filter func(Record) bool

// Sink renders and emits an accepted record.
type Sink interface {
	Write(Record)
}

const timeLayout = "2006-01-02T15:04:05.000Z"

// FormatLine renders a record in the canonical line format:
//
//	2026-01-02T15:04:05.000Z [LEVEL] [component] message
//
// The component segment is omitted when the record has none.
func FormatLine(r Record) string {
	var b strings.Builder
	b.WriteString(r.Time.UTC().Format(timeLayout))
	b.WriteString(" [")
	b.WriteString(r.Level.String())
	b.WriteByte(']')
	if r.Component != "" {
		b.WriteString(" [")
		b.WriteString(r.Component)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(r.Message)
	return b.String()
}

// newRecord stamps and formats a record from call arguments.
func newRecord(opts Options, args []interface{}) Record {
	return Record{
		Time:      time.Now(),
		Level:     opts.Level,
		Component: opts.Component,
		Message:   formatMessage(args),
	}
}

// formatMessage renders a printf-style payload. A leading string
// followed by further arguments is treated as the format when it
// contains a verb; anything else is joined with spaces.
func formatMessage(args []interface{}) string {
	if len(args) == 0 {
		return ""
	}
	if format, ok := args[0].(string); ok && len(args) > 1 && strings.Contains(format, "%") {
		return fmt.Sprintf(format, args[1:]...)
	}
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
