package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAGETEMPLATE_TEMPLATE_PATH", "")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.TemplatePath)
	assert.Empty(t, cfg.GetTemplatePath())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 4, cfg.LoadConcurrency)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("PAGETEMPLATE_TEMPLATE_PATH", "")
	dir := writeConfig(t, `
template:
  path: " /opt/sermant/templates "
log:
  level: debug
load:
  concurrency: 2
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/sermant/templates", cfg.GetTemplatePath())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2, cfg.LoadConcurrency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "template:\n  path: /from/file\n")
	t.Setenv("PAGETEMPLATE_TEMPLATE_PATH", "/from/env")
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.TemplatePath)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PAGETEMPLATE_TEMPLATE_PATH", "")
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad concurrency", "load:\n  concurrency: 0\n"},
		{"bad yaml", "template: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}
