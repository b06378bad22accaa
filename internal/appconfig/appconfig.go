// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRequestTimeout is the per-call timeout for chat requests.
	defaultRequestTimeout = 60 * time.Second
	// defaultConnectTimeout bounds connection establishment only.
	defaultConnectTimeout = 10 * time.Second
	// defaultBaseURL points at a local Ollama-compatible server.
	defaultBaseURL = "http://127.0.0.1:11434"
)

// Config represents the top-level application configuration.
type Config struct {
	BaseURL        string `json:"baseUrl" mapstructure:"baseUrl"`
	Backend        string `json:"backend" mapstructure:"backend"`
	SourcePath     string `json:"sourcePath" mapstructure:"sourcePath"`
	DBPath         string `json:"dbPath" mapstructure:"dbPath"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	PythonBin      string `json:"pythonBin,omitempty" mapstructure:"pythonBin"`
	LogFile        string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	ConfigPath     string `json:"-" mapstructure:"-"`
}

// RequestTimeout returns the per-call timeout, falling back to the default.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConnectTimeout returns the connection-establishment timeout.
func (c Config) ConnectTimeout() time.Duration {
	return defaultConnectTimeout
}

// ServerURL returns the inference server base URL, applying the default if unset.
func (c Config) ServerURL() string {
	if u := strings.TrimSpace(c.BaseURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultBaseURL
}

// BackendName returns the configured inference backend label.
func (c Config) BackendName() string {
	if b := strings.TrimSpace(c.Backend); b != "" {
		return b
	}
	return "ollama"
}

// CatalogPath returns the path to the model catalog JSON document.
func (c Config) CatalogPath() string {
	if p := strings.TrimSpace(c.SourcePath); p != "" {
		return p
	}
	return "docs/source.json"
}

// DatabasePath returns the path to the results database file.
func (c Config) DatabasePath() string {
	if p := strings.TrimSpace(c.DBPath); p != "" {
		return p
	}
	return "gauntlet.db"
}

// PythonPath returns the interpreter used by the code-generation suite.
func (c Config) PythonPath() string {
	if p := strings.TrimSpace(c.PythonBin); p != "" {
		return p
	}
	return "python3"
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "gauntlet.log"
}

// Load reads the application configuration from the specified path. A missing
// file is not an error; defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}
