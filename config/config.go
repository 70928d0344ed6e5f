// Package config loads logger definitions for a siftlog registry from
// YAML files, with SIFTLOG_-prefixed environment variable overrides,
// using Viper. A config file declares a list of loggers, each naming a
// sink kind and its filter policy:
//
//	loggers:
//	  - sink: console
//	    min_level: info
//	  - sink: rotating
//	    path: /var/log/app.log
//	    max_bytes: 10485760
//	    max_backups: 5
//	    levels: [warn, error]
//	    components: [db, cache]
//	    query: NOT "health check"
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/coffersTech/siftlog"
	"github.com/coffersTech/siftlog/siftql"
)

// LoggerSpec describes one logger to start.
type LoggerSpec struct {
	Sink       string   `mapstructure:"sink"`        // console | file | rotating | json | memory
	Path       string   `mapstructure:"path"`        // file and rotating sinks
	MaxBytes   int64    `mapstructure:"max_bytes"`   // rotating sink rotation threshold
	MaxBackups int      `mapstructure:"max_backups"` // rotating sink retained segments
	Mode       string   `mapstructure:"mode"`        // all | any
	MinLevel   string   `mapstructure:"min_level"`
	Levels     []string `mapstructure:"levels"` // wins over min_level when both set
	Components []string `mapstructure:"components"`
	Query      string   `mapstructure:"query"`   // siftql expression, appended as a filter
	Secrets    []string `mapstructure:"secrets"` // values scrubbed from output
}

// File is the root of a siftlog config file.
type File struct {
	Loggers []LoggerSpec `mapstructure:"loggers"`
}

// Load reads and parses a config file.
func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("SIFTLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &f, nil
}

// Apply starts one logger per spec on the registry and returns them in
// spec order. The first invalid spec aborts with an error; loggers
// started before the failure stay registered.
func (f *File) Apply(r *siftlog.Registry) ([]*siftlog.Logger, error) {
	loggers := make([]*siftlog.Logger, 0, len(f.Loggers))
	for i, spec := range f.Loggers {
		cfg, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("logger %d: %w", i, err)
		}
		loggers = append(loggers, r.StartLogger(cfg))
	}
	return loggers, nil
}

func (spec LoggerSpec) build() (siftlog.Config, error) {
	sink, err := spec.buildSink()
	if err != nil {
		return siftlog.Config{}, err
	}

	cfg := siftlog.Config{
		Sink:       sink,
		Mode:       siftlog.Mode(spec.Mode),
		Components: spec.Components,
	}
	for _, name := range spec.Levels {
		l, err := siftlog.ParseLevel(name)
		if err != nil {
			return siftlog.Config{}, err
		}
		cfg.Levels = append(cfg.Levels, l)
	}
	if spec.MinLevel != "" {
		l, err := siftlog.ParseLevel(spec.MinLevel)
		if err != nil {
			return siftlog.Config{}, err
		}
		cfg.MinLevel = l
	}
	if spec.Query != "" {
		filter, err := siftql.Compile(spec.Query)
		if err != nil {
			return siftlog.Config{}, fmt.Errorf("query %q: %w", spec.Query, err)
		}
		cfg.Filters = append(cfg.Filters, filter)
	}
	return cfg, nil
}

func (spec LoggerSpec) buildSink() (siftlog.Sink, error) {
	var sink siftlog.Sink
	switch spec.Sink {
	case "console", "":
		sink = siftlog.NewConsoleSink()
	case "file":
		if spec.Path == "" {
			return nil, fmt.Errorf("file sink requires a path")
		}
		sink = siftlog.NewFileSink(spec.Path)
	case "rotating":
		if spec.Path == "" {
			return nil, fmt.Errorf("rotating sink requires a path")
		}
		s, err := siftlog.NewRotatingFileSink(spec.Path, spec.MaxBytes, spec.MaxBackups)
		if err != nil {
			return nil, err
		}
		sink = s
	case "json":
		sink = siftlog.NewJSONSink(os.Stderr)
	case "memory":
		sink = siftlog.NewMemorySink(0)
	default:
		return nil, fmt.Errorf("unknown sink kind %q", spec.Sink)
	}

	if len(spec.Secrets) > 0 {
		sink = siftlog.NewRedactor(sink, spec.Secrets...)
	}
	return sink, nil
}

// Watch re-applies the config file to the registry whenever the file
// changes: the registry is reset and the new specs are started.
// Loggers started outside the file are dropped on reload, so Watch is
// meant for registries owned entirely by the file. Reload failures are
// reported to stderr and leave the registry empty until the next good
// reload.
func Watch(path string, r *siftlog.Registry) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	v.OnConfigChange(func(fsnotify.Event) {
		var f File
		if err := v.Unmarshal(&f); err != nil {
			fmt.Fprintf(os.Stderr, "siftlog: config reload failed: %v\n", err)
			return
		}
		r.Reset()
		if _, err := f.Apply(r); err != nil {
			fmt.Fprintf(os.Stderr, "siftlog: config reload failed: %v\n", err)
		}
	})
	v.WatchConfig()
	return nil
}
