package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const configDirName = ".pachca-client"
const configFileName = "config.json"

// Configuration holds all the application's persisted settings: the API
// access token and the tuning knobs of the SDK.
type Configuration struct {
	AccessToken string `json:"access_token"`
	// APIDelayMS is the inter-call delay in milliseconds. Zero means
	// the SDK default.
	APIDelayMS int `json:"api_delay_ms,omitempty"`
	// TimeoutS is the per-request timeout in seconds. Zero means the
	// SDK default.
	TimeoutS int  `json:"timeout_s,omitempty"`
	Debug    bool `json:"debug"`
}

// APIDelay converts the stored delay to a duration. Zero when unset.
func (c *Configuration) APIDelay() time.Duration {
	return time.Duration(c.APIDelayMS) * time.Millisecond
}

// Timeout converts the stored timeout to a duration. Zero when unset.
func (c *Configuration) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}

// IsConfigured reports whether an access token has been saved.
func (c *Configuration) IsConfigured() bool {
	return c.AccessToken != ""
}

// Manager handles configuration file operations with a configurable
// directory, so tests can point it at a temp dir.
type Manager struct {
	configDir string
}

// NewManager creates a manager rooted at the default location in the
// user's home directory.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &Manager{configDir: filepath.Join(homeDir, configDirName)}, nil
}

// NewManagerWithConfigDir creates a manager rooted at configDir.
func NewManagerWithConfigDir(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

func (m *Manager) configFilePath() string {
	return filepath.Join(m.configDir, configFileName)
}

// Save persists the configuration as JSON. A file lock guards against
// concurrent invocations of the CLI writing at the same time.
func (m *Manager) Save(config *Configuration) error {
	if err := os.MkdirAll(m.configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	filePath := m.configFilePath()
	lock := flock.New(filePath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring config lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("config file is locked by another process")
	}
	defer lock.Unlock()

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config to JSON: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, 0600); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Load reads the configuration file from disk.
func (m *Manager) Load() (*Configuration, error) {
	data, err := os.ReadFile(m.configFilePath())
	if err != nil {
		return nil, err
	}

	config := &Configuration{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}
	return config, nil
}

// LoadOrCreate attempts to load the configuration file. If it doesn't
// exist, it returns a new, empty configuration.
func (m *Manager) LoadOrCreate() (*Configuration, error) {
	config, err := m.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return &Configuration{}, nil
		}
		return nil, err
	}
	return config, nil
}
