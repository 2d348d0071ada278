package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream URL, etc.)
// - default: Values common across all environments (timeouts, probe cadence, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Upstream   UpstreamConfig
	Probe      ProbeConfig
	Submission SubmissionConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// UpstreamConfig points at the reviews API the page service proxies.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
}

// ProbeConfig drives the upstream connectivity monitor.
type ProbeConfig struct {
	Interval time.Duration `envconfig:"PROBE_INTERVAL" default:"10s"`
	Timeout  time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`
}

type SubmissionConfig struct {
	// MaxReconcileAttempts bounds how many connectivity-restored cycles a
	// deferred submission may consume before it is left pending for good.
	MaxReconcileAttempts int `envconfig:"SUBMISSION_MAX_RECONCILE_ATTEMPTS" default:"3"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *UpstreamConfig) ResolveEndpoint(path string) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid upstream base URL %q: %w", c.BaseURL, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint path %q: %w", path, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:11337",
			Timeout: time.Second,
		},
		Probe: ProbeConfig{
			Interval: 50 * time.Millisecond,
			Timeout:  50 * time.Millisecond,
		},
		Submission: SubmissionConfig{
			MaxReconcileAttempts: 3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
