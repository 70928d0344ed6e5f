package main

import (
	"bytes"

	"github.com/valyala/fastjson"

	"github.com/coffersTech/siftlog"
)

var parsers fastjson.ParserPool

// parseLine interprets one stdin line. JSON objects may override the
// default level and component and must carry their text in a message
// or msg field; anything else is returned verbatim with the defaults.
func parseLine(line []byte, defaults siftlog.Options) (siftlog.Options, string) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return defaults, string(trimmed)
	}

	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(trimmed)
	if err != nil {
		return defaults, string(trimmed)
	}

	msg := string(v.GetStringBytes("message"))
	if msg == "" {
		msg = string(v.GetStringBytes("msg"))
	}
	if msg == "" {
		// JSON without a message field is passed through as-is
		return defaults, string(trimmed)
	}

	opts := defaults
	if name := string(v.GetStringBytes("level")); name != "" {
		if parsed, err := siftlog.ParseLevel(name); err == nil {
			opts.Level = parsed
		}
	}
	if comp := string(v.GetStringBytes("component")); comp != "" {
		opts.Component = comp
	}
	return opts, msg
}
