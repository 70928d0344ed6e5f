// Package logrushook forwards logrus entries into a siftlog registry,
// so applications already instrumented with logrus can fan out through
// siftlog loggers and sinks without changing call sites.
package logrushook

import (
	"github.com/sirupsen/logrus"

	"github.com/coffersTech/siftlog"
)

// Hook implements logrus.Hook on top of a siftlog registry.
type Hook struct {
	registry  *siftlog.Registry
	component string
}

// New returns a hook delivering entries to r, tagged with component.
func New(r *siftlog.Registry, component string) *Hook {
	return &Hook{registry: r, component: component}
}

// Levels reports that the hook wants every logrus level.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire delivers one entry to the registry.
func (h *Hook) Fire(e *logrus.Entry) error {
	h.registry.Log(siftlog.Options{
		Level:     mapLevel(e.Level),
		Component: h.component,
	}, "%s", e.Message)
	return nil
}

// mapLevel converts logrus severities onto the siftlog scale. Fatal
// and panic collapse into ERROR, the highest siftlog severity.
func mapLevel(l logrus.Level) siftlog.Level {
	switch l {
	case logrus.TraceLevel:
		return siftlog.LevelTrace
	case logrus.DebugLevel:
		return siftlog.LevelDebug
	case logrus.InfoLevel:
		return siftlog.LevelInfo
	case logrus.WarnLevel:
		return siftlog.LevelWarn
	default:
		return siftlog.LevelError
	}
}
