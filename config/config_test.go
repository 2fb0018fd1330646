package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/voicelab/audioeval/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.config")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
project_id: "proj-42"
api_token: "tok-1"
log_level: debug
poll_interval: 250ms
job_timeout: 2m
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "proj-42" {
		t.Errorf("project id = %q, want proj-42", cfg.ProjectID)
	}
	if cfg.APIToken != "tok-1" {
		t.Errorf("api token = %q, want tok-1", cfg.APIToken)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("base url = %q, want the default", cfg.BaseURL)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Errorf("poll interval = %v, want 250ms", cfg.PollInterval)
	}
	if cfg.JobTimeout != 2*time.Minute {
		t.Errorf("job timeout = %v, want 2m", cfg.JobTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoadJSONStyleConfig(t *testing.T) {
	// The legacy api.config format is JSON, which the YAML decoder accepts.
	path := writeConfig(t, `{"project_id": "proj-7", "api_token": "tok-7"}`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProjectID != "proj-7" || cfg.APIToken != "tok-7" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
project_id: "proj-42"
api_token: "from-file"
`)
	t.Setenv("AUDIOEVAL_API_TOKEN", "from-env")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIToken != "from-env" {
		t.Errorf("api token = %q, want the environment override", cfg.APIToken)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.config"))
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestValidateRequiresCredentials(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"missing project", config.Config{APIToken: "tok"}},
		{"missing token", config.Config{ProjectID: "proj"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			var cfgErr *config.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := config.Config{ProjectID: "proj", APIToken: "tok"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("base url = %q, want default", cfg.BaseURL)
	}
	if cfg.PollInterval != config.DefaultPollInterval {
		t.Errorf("poll interval = %v, want default", cfg.PollInterval)
	}
}
