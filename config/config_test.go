package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coffersTech/siftlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siftlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
loggers:
  - sink: console
    min_level: info
  - sink: file
    path: /var/log/app.log
    levels: [warn, error]
    components: [db, cache]
    mode: any
    query: NOT "health check"
    secrets: [hunter2]
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Loggers, 2)

	assert.Equal(t, "console", f.Loggers[0].Sink)
	assert.Equal(t, "info", f.Loggers[0].MinLevel)

	second := f.Loggers[1]
	assert.Equal(t, "file", second.Sink)
	assert.Equal(t, "/var/log/app.log", second.Path)
	assert.Equal(t, []string{"warn", "error"}, second.Levels)
	assert.Equal(t, []string{"db", "cache"}, second.Components)
	assert.Equal(t, "any", second.Mode)
	assert.Equal(t, `NOT "health check"`, second.Query)
	assert.Equal(t, []string{"hunter2"}, second.Secrets)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyStartsLoggers(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	path := writeConfig(t, fmt.Sprintf(`
loggers:
  - sink: file
    path: %s
    min_level: warn
    components: [ui]
`, logPath))

	f, err := Load(path)
	require.NoError(t, err)

	r := siftlog.NewRegistry()
	loggers, err := f.Apply(r)
	require.NoError(t, err)
	require.Len(t, loggers, 1)

	r.Log(siftlog.Options{Level: siftlog.LevelWarn, Component: "ui"}, "kept")
	r.Log(siftlog.Options{Level: siftlog.LevelInfo, Component: "ui"}, "dropped")
	r.Log(siftlog.Options{Level: siftlog.LevelWarn, Component: "db"}, "dropped")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped")
}

func TestApplyCompilesQueries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	path := writeConfig(t, fmt.Sprintf(`
loggers:
  - sink: file
    path: %s
    query: component:api AND level>=warn
`, logPath))

	f, err := Load(path)
	require.NoError(t, err)

	r := siftlog.NewRegistry()
	_, err = f.Apply(r)
	require.NoError(t, err)

	r.Log(siftlog.Options{Level: siftlog.LevelError, Component: "api"}, "kept")
	r.Log(siftlog.Options{Level: siftlog.LevelError, Component: "db"}, "dropped")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped")
}

func TestApplyRedactsSecrets(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	path := writeConfig(t, fmt.Sprintf(`
loggers:
  - sink: file
    path: %s
    secrets: [hunter2]
`, logPath))

	f, err := Load(path)
	require.NoError(t, err)

	r := siftlog.NewRegistry()
	_, err = f.Apply(r)
	require.NoError(t, err)

	r.Log(siftlog.Options{Level: siftlog.LevelInfo}, "password is hunter2")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")
	assert.Contains(t, string(data), "[REDACTED:")
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown sink",
			content: `
loggers:
  - sink: syslog
`,
			wantErr: "unknown sink kind",
		},
		{
			name: "file sink without path",
			content: `
loggers:
  - sink: file
`,
			wantErr: "requires a path",
		},
		{
			name: "bad level name",
			content: `
loggers:
  - sink: console
    min_level: loud
`,
			wantErr: "unknown log level",
		},
		{
			name: "bad query",
			content: `
loggers:
  - sink: console
    query: owner:bob
`,
			wantErr: "unknown field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)

			_, err = f.Apply(siftlog.NewRegistry())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
