package logrushook

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffersTech/siftlog"
)

func TestHookForwardsEntries(t *testing.T) {
	reg := siftlog.NewRegistry()
	sink := siftlog.NewMemorySink(8)
	reg.StartLogger(siftlog.Config{Sink: sink})

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.AddHook(New(reg, "legacy"))

	log.Warn("disk almost full")
	log.Info("routine heartbeat")

	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WARN]")
	assert.Contains(t, lines[0], "[legacy]")
	assert.Contains(t, lines[0], "disk almost full")
	assert.Contains(t, lines[1], "[INFO]")
}

func TestHookRespectsRegistryFilters(t *testing.T) {
	reg := siftlog.NewRegistry()
	sink := siftlog.NewMemorySink(8)
	reg.StartLogger(siftlog.Config{Sink: sink, MinLevel: siftlog.LevelError})

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	log.AddHook(New(reg, ""))

	log.Debug("too quiet")
	log.Error("loud enough")

	lines := sink.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "loud enough")
}

func TestMapLevel(t *testing.T) {
	tests := []struct {
		in   logrus.Level
		want siftlog.Level
	}{
		{logrus.TraceLevel, siftlog.LevelTrace},
		{logrus.DebugLevel, siftlog.LevelDebug},
		{logrus.InfoLevel, siftlog.LevelInfo},
		{logrus.WarnLevel, siftlog.LevelWarn},
		{logrus.ErrorLevel, siftlog.LevelError},
		{logrus.FatalLevel, siftlog.LevelError},
		{logrus.PanicLevel, siftlog.LevelError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapLevel(tt.in), "logrus level %v", tt.in)
	}
}
