package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// telemetry
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	HoneycombEnabled      bool   `toml:"honeycomb_enabled"`
	// plan generator
	LLMBaseURL         string `toml:"llm_base_url"`
	LLMModel           string `toml:"llm_model"`
	PlanTimeoutSeconds int    `toml:"plan_timeout_seconds"`
	PlansAllowedPerMin int    `toml:"plans_allowed_per_min"`
	// set only behind a proxy that overwrites X-Real-Ip / X-Forwarded-For
	TrustProxyHeaders  bool   `toml:"trust_proxy_headers"`
	// sessions & reports
	SessionTTLMinutes     int    `toml:"session_ttl_minutes"`
	ReportCacheSizeMB     int    `toml:"report_cache_size_mb"`
	ReportCacheTTLMinutes int    `toml:"report_cache_ttl_minutes"`
	QuotesCsvPath         string `toml:"quotes_csv_path"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// Load reads the TOML config file and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

// Parse does the same as Load, but from a string.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LLMBaseURL == "" {
		c.LLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.LLMModel == "" {
		c.LLMModel = "gemini-2.0-flash"
	}
	if c.PlanTimeoutSeconds == 0 {
		c.PlanTimeoutSeconds = 60
	}
	if c.PlansAllowedPerMin == 0 {
		c.PlansAllowedPerMin = 5
	}
	if c.SessionTTLMinutes == 0 {
		c.SessionTTLMinutes = 120
	}
	if c.ReportCacheSizeMB == 0 {
		c.ReportCacheSizeMB = 20
	}
	if c.ReportCacheTTLMinutes == 0 {
		c.ReportCacheTTLMinutes = 60
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.PlanTimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("invalid plan timeout: %d", c.PlanTimeoutSeconds))
	}
	if c.PlansAllowedPerMin < 0 {
		errs = append(errs, fmt.Errorf("invalid plans allowed per min: %d", c.PlansAllowedPerMin))
	}
	if c.SessionTTLMinutes < 0 {
		errs = append(errs, fmt.Errorf("invalid session ttl: %d", c.SessionTTLMinutes))
	}
	return errors.Join(errs...)
}

func (c *Config) PlanTimeout() time.Duration {
	return time.Duration(c.PlanTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) ReportCacheTTL() time.Duration {
	return time.Duration(c.ReportCacheTTLMinutes) * time.Minute
}
