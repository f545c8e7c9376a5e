// Package config loads the elysion process configuration from ELYSION_*
// environment variables, then lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// ErrInvalid is returned when a configuration value parses but can't be
// used.
var ErrInvalid = errors.New("invalid configuration")

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config holds the elysion command configuration.
type Config struct {
	HTTPAddr        string        `env:"ELYSION_HTTP_ADDR" envDefault:"localhost:8080"`
	StaticBaseURL   string        `env:"ELYSION_STATIC_BASE_URL" envDefault:"/static"`
	ContentFile     string        `env:"ELYSION_CONTENT_FILE"`
	LogLevel        string        `env:"ELYSION_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"ELYSION_LOG_FORMAT" envDefault:"json"`
	CORSOrigins     []string      `env:"ELYSION_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	APIRateLimit    float64       `env:"ELYSION_API_RATE_LIMIT" envDefault:"10"`
	APIRateBurst    int           `env:"ELYSION_API_RATE_BURST" envDefault:"20"`
	OTLPEndpoint    string        `env:"ELYSION_OTLP_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"ELYSION_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// ExportDir, when set, writes the site to a directory instead of
	// serving it. It is only settable by flag.
	ExportDir string
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Parse loads a Config from the environment, then applies flags parsed from
// args on top of it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	origins := strings.Join(cfg.CORSOrigins, ",")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StaticBaseURL, "static-base-url", cfg.StaticBaseURL, "base URL static assets are served from")
	fs.StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "YAML file to load site content from instead of the built-in copy")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json or console")
	fs.StringVar(&origins, "cors-origins", origins, "comma-separated origins allowed to call the content API")
	fs.Float64Var(&cfg.APIRateLimit, "api-rate-limit", cfg.APIRateLimit, "content API requests per second per client; 0 disables the limit")
	fs.IntVar(&cfg.APIRateBurst, "api-rate-burst", cfg.APIRateBurst, "content API burst size per client")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", cfg.OTLPEndpoint, "OTLP/HTTP endpoint to export traces to")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "how long to wait for requests to drain on shutdown")
	fs.StringVar(&cfg.ExportDir, "export", cfg.ExportDir, "write the rendered site to this directory and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.CORSOrigins = splitList(origins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the parsers can't.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalid))
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatConsole {
		errs = append(errs, fmt.Errorf("log format %q: %w", c.LogFormat, ErrInvalid))
	}
	if c.APIRateLimit < 0 {
		errs = append(errs, fmt.Errorf("api rate limit %v: %w", c.APIRateLimit, ErrInvalid))
	}
	if c.APIRateLimit > 0 && c.APIRateBurst < 1 {
		errs = append(errs, fmt.Errorf("api rate burst %d: %w", c.APIRateBurst, ErrInvalid))
	}
	if c.ExportDir == "" && c.HTTPAddr == "" {
		errs = append(errs, fmt.Errorf("http address is empty: %w", ErrInvalid))
	}
	return errors.Join(errs...)
}

// Level is the parsed LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
