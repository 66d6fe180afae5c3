// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Remote backends
const (
	BackendNone     = "none"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
	BackendMirror   = "mirror"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Local persistence
	DataDir    string `json:"data_dir,omitempty"`    // Directory holding the local slot
	StorageKey string `json:"storage_key,omitempty"` // Slot key (file name without .json)
	DebounceMS int    `json:"debounce_ms,omitempty" validate:"gte=0"`

	Remote RemoteConfig `json:"remote"`

	// Behavior
	IdentityToken string `json:"identity_token,omitempty"` // Signed identity token; empty means signed out
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// RemoteConfig selects and configures the remote copy.
type RemoteConfig struct {
	Backend     string `json:"backend,omitempty" validate:"omitempty,oneof=none postgres s3 mirror"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	S3Bucket    string `json:"s3_bucket,omitempty"`
	S3Region    string `json:"s3_region,omitempty"`
	S3Endpoint  string `json:"s3_endpoint,omitempty" validate:"omitempty,url"`
	S3Prefix    string `json:"s3_prefix,omitempty"`
	S3AccessKey string `json:"s3_access_key,omitempty"`
	S3SecretKey string `json:"s3_secret_key,omitempty"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	dataDir := ".resume_craft"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".resume_craft")
	}
	return Config{
		DataDir:    dataDir,
		StorageKey: "resume_craft_data",
		DebounceMS: 1000,
		Remote:     RemoteConfig{Backend: BackendNone},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto unset fields.
func (c *Config) ApplyEnv() {
	envString(&c.DataDir, "RESUME_DATA_DIR")
	envString(&c.IdentityToken, "RESUME_TOKEN")
	envString(&c.Remote.Backend, "RESUME_REMOTE")
	envString(&c.Remote.DatabaseURL, "DATABASE_URL")
	envString(&c.Remote.S3Bucket, "RESUME_S3_BUCKET")
	envString(&c.Remote.S3Region, "RESUME_S3_REGION")
	envString(&c.Remote.S3Endpoint, "RESUME_S3_ENDPOINT")
	envString(&c.Remote.S3Prefix, "RESUME_S3_PREFIX")
	envString(&c.Remote.S3AccessKey, "RESUME_S3_ACCESS_KEY")
	envString(&c.Remote.S3SecretKey, "RESUME_S3_SECRET_KEY")

	if c.DebounceMS == 0 {
		if v, err := strconv.Atoi(os.Getenv("RESUME_DEBOUNCE_MS")); err == nil {
			c.DebounceMS = v
		}
	}
}

func envString(dst *string, key string) {
	if *dst != "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for fields a command may never need; each backend
// only requires its own settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	switch c.Remote.Backend {
	case BackendPostgres:
		if c.Remote.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres backend")
		}
	case BackendS3:
		if c.Remote.S3Bucket == "" {
			return fmt.Errorf("config error: 's3_bucket' is required for the s3 backend")
		}
	case BackendMirror:
		if c.Remote.DatabaseURL == "" || c.Remote.S3Bucket == "" {
			return fmt.Errorf("config error: the mirror backend needs both 'database_url' and 's3_bucket'")
		}
	}

	if (c.Remote.S3AccessKey == "") != (c.Remote.S3SecretKey == "") {
		return fmt.Errorf("config error: 's3_access_key' and 's3_secret_key' must be set together")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.StorageKey == "" {
		result.StorageKey = defaults.StorageKey
	}
	if result.IdentityToken == "" {
		result.IdentityToken = defaults.IdentityToken
	}
	if result.Remote.Backend == "" {
		result.Remote.Backend = defaults.Remote.Backend
	}
	if result.Remote.DatabaseURL == "" {
		result.Remote.DatabaseURL = defaults.Remote.DatabaseURL
	}
	if result.Remote.S3Bucket == "" {
		result.Remote.S3Bucket = defaults.Remote.S3Bucket
	}
	if result.Remote.S3Region == "" {
		result.Remote.S3Region = defaults.Remote.S3Region
	}
	if result.Remote.S3Endpoint == "" {
		result.Remote.S3Endpoint = defaults.Remote.S3Endpoint
	}
	if result.Remote.S3Prefix == "" {
		result.Remote.S3Prefix = defaults.Remote.S3Prefix
	}

	// Int fields: use default if zero
	if result.DebounceMS == 0 {
		result.DebounceMS = defaults.DebounceMS
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Debounce returns the save delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
