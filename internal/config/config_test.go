package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("elysion", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.HTTPAddr)
	assert.Equal(t, "/static", cfg.StaticBaseURL)
	assert.Empty(t, cfg.ContentFile)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10.0, cfg.APIRateLimit)
	assert.Equal(t, 20, cfg.APIRateBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.ExportDir)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ELYSION_HTTP_ADDR", ":9000")
	t.Setenv("ELYSION_CORS_ORIGINS", "https://elysion.example,https://www.elysion.example")
	t.Setenv("ELYSION_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ELYSION_LOG_FORMAT", "console")

	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://elysion.example", "https://www.elysion.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, LogFormatConsole, cfg.LogFormat)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ELYSION_HTTP_ADDR", ":9000")
	t.Setenv("ELYSION_LOG_LEVEL", "warn")

	cfg, err := Parse(newFlagSet(), []string{
		"-http-addr", ":9100",
		"-cors-origins", " https://a.example , ,https://b.example",
		"-export", "dist",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "dist", cfg.ExportDir)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("ELYSION_API_RATE_BURST", "lots")

	_, err := Parse(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	tests := map[string][]string{
		"log-level":  {"-log-level", "loud"},
		"log-format": {"-log-format", "xml"},
		"rate":       {"-api-rate-limit", "-1"},
		"burst":      {"-api-rate-burst", "0"},
		"addr":       {"-http-addr", ""},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(newFlagSet(), args)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateExportNeedsNoAddr(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-http-addr", "", "-export", "dist"})
	assert.NoError(t, err)
}
