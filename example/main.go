package main

import (
	"github.com/coffersTech/siftlog"
)

func main() {
	console := siftlog.StartLogger(siftlog.Config{
		Sink:     siftlog.NewConsoleSink(),
		MinLevel: siftlog.LevelInfo,
	})
	defer console.Stop()

	file := siftlog.StartLogger(siftlog.Config{
		Sink:       siftlog.NewFileSink("siftlog-example.log"),
		Levels:     []siftlog.Level{siftlog.LevelWarn, siftlog.LevelError},
		Components: []string{"db"},
	})
	defer file.Stop()

	siftlog.Log(siftlog.Options{Level: siftlog.LevelDebug, Component: "api"}, "dropped by both loggers")
	siftlog.Log(siftlog.Options{Level: siftlog.LevelInfo, Component: "api"}, "user %d logged in", 42)
	siftlog.Log(siftlog.Options{Level: siftlog.LevelWarn, Component: "db"}, "slow query: %s", "SELECT * FROM orders")

	// Enabled only while SIFTLOG_VERBOSE is set to a truthy value.
	verbose := siftlog.StartLogger(siftlog.Config{
		Sink:    siftlog.NewConsoleSink(),
		Filters: []siftlog.Filter{siftlog.EnvFilter("SIFTLOG_VERBOSE")},
	})
	defer verbose.Stop()

	siftlog.Log(siftlog.Options{Level: siftlog.LevelTrace}, "visible only when SIFTLOG_VERBOSE is set")
}
