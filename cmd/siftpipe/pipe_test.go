package main

import (
	"testing"

	"github.com/coffersTech/siftlog"
)

func TestParseLine(t *testing.T) {
	defaults := siftlog.Options{Level: siftlog.LevelInfo, Component: "pipe"}

	tests := []struct {
		name     string
		line     string
		wantOpts siftlog.Options
		wantMsg  string
	}{
		{
			name:     "plain text keeps defaults",
			line:     "something happened",
			wantOpts: defaults,
			wantMsg:  "something happened",
		},
		{
			name:     "surrounding whitespace is trimmed",
			line:     "  padded  ",
			wantOpts: defaults,
			wantMsg:  "padded",
		},
		{
			name:     "json overrides level and component",
			line:     `{"level":"error","component":"db","message":"connection lost"}`,
			wantOpts: siftlog.Options{Level: siftlog.LevelError, Component: "db"},
			wantMsg:  "connection lost",
		},
		{
			name:     "json msg shorthand",
			line:     `{"msg":"short form"}`,
			wantOpts: defaults,
			wantMsg:  "short form",
		},
		{
			name:     "json with unknown level keeps default",
			line:     `{"level":"loud","message":"hm"}`,
			wantOpts: defaults,
			wantMsg:  "hm",
		},
		{
			name:     "json without message passes through verbatim",
			line:     `{"level":"error"}`,
			wantOpts: defaults,
			wantMsg:  `{"level":"error"}`,
		},
		{
			name:     "invalid json passes through verbatim",
			line:     `{not json`,
			wantOpts: defaults,
			wantMsg:  `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, msg := parseLine([]byte(tt.line), defaults)
			if opts != tt.wantOpts {
				t.Errorf("opts = %+v, want %+v", opts, tt.wantOpts)
			}
			if msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
