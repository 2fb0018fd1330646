package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL points at the production analysis service.
const DefaultBaseURL = "https://api.behavioralsignals.com/v5"

const DefaultPollInterval = 500 * time.Millisecond

// Config holds the credentials and tuning knobs for one run. It is loaded
// once at startup and passed explicitly into constructors.
type Config struct {
	BaseURL      string        `mapstructure:"base_url" yaml:"base_url"`
	ProjectID    string        `mapstructure:"project_id" yaml:"project_id"`
	APIToken     string        `mapstructure:"api_token" yaml:"api_token"`
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	// JobTimeout bounds a single job's poll loop. Zero means no limit.
	JobTimeout time.Duration `mapstructure:"job_timeout" yaml:"job_timeout"`
}

// ConfigurationError is a missing or invalid credential or input path.
// It is terminal for the whole run.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// Load reads the config file and applies AUDIOEVAL_* environment overrides.
// When path is empty the usual locations are tried; a run configured purely
// through the environment is fine as long as Validate passes.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("project_id", "")
	v.SetDefault("api_token", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("poll_interval", DefaultPollInterval.String())
	v.SetDefault("job_timeout", "0s")
	v.SetEnvPrefix("AUDIOEVAL")
	v.AutomaticEnv()

	guess := []string{"api.config", filepath.Join("config", "api.config")}
	if path != "" {
		guess = []string{path}
	}

	var lastErr error
	loaded := false
	for _, p := range guess {
		f, err := os.Open(p)
		if err != nil {
			lastErr = err
			continue
		}
		raw := map[string]any{}
		err = yaml.NewDecoder(f).Decode(&raw)
		f.Close()
		if err != nil && !errors.Is(err, io.EOF) {
			lastErr = fmt.Errorf("parse %s: %w", p, err)
			continue
		}
		if err := v.MergeConfigMap(raw); err != nil {
			lastErr = err
			continue
		}
		loaded = true
		break
	}
	if path != "" && !loaded {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("cannot read config file %s: %v", path, lastErr)}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("decode config: %v", err)}
	}
	return &cfg, nil
}

// Validate checks that the credentials required for any API call are set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return &ConfigurationError{Reason: "project_id is required"}
	}
	if strings.TrimSpace(c.APIToken) == "" {
		return &ConfigurationError{Reason: "api_token is required"}
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return nil
}
