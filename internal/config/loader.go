package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const fileName = "termfolio.yaml"

// Load reads the termfolio configuration.
// Search order: customPath -> ~/.termfolio/config.yaml -> ./configs/termfolio.yaml -> embedded default.
// Files are merged over the embedded defaults, so a partial file only
// overrides the keys it sets.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// userConfigPath returns ~/.termfolio/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termfolio", "config.yaml")
}

// LoadDotEnv loads KEY=VALUE files into the process environment.
// Missing files are skipped; variables already set are not overwritten.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides server and storage settings from environment variables:
//
//	TERMFOLIO_SSH_ADDR, TERMFOLIO_HOST_KEY, TERMFOLIO_HTTP_ADDR, PORT, TERMFOLIO_DB
//
// PORT is honoured for hosting platforms and only applies when
// TERMFOLIO_HTTP_ADDR is unset.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("TERMFOLIO_SSH_ADDR"); v != "" {
		c.Server.SSHAddr = v
	}
	if v := getenv("TERMFOLIO_HOST_KEY"); v != "" {
		c.Server.HostKeyPath = v
	}
	if v := getenv("TERMFOLIO_HTTP_ADDR"); v != "" {
		c.Server.HTTPAddr = v
	} else if port := getenv("PORT"); port != "" {
		c.Server.HTTPAddr = ":" + port
	}
	if v := getenv("TERMFOLIO_DB"); v != "" {
		c.Storage.DBPath = v
	}
}

// TickInterval returns the snake tick interval as a duration.
func (s Snake) TickInterval() time.Duration {
	return time.Duration(s.TickMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (s Server) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// SessionTTL returns how long an idle HTTP session is kept.
func (s Server) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLMinutes) * time.Minute
}
