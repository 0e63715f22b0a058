package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the effective runtime configuration for one launcher run.
// Every field is guaranteed non-zero after Resolve returns.
type Config struct {
	Host        string `env:"MINDFORGE_HOST"`
	Port        int    `env:"MINDFORGE_PORT"`
	ConfigPath  string `env:"MINDFORGE_CONFIG"`
	StoragePath string `env:"MINDFORGE_STORAGE"`
}

// Resolve merges the provided flag overrides with the process environment
// and built-in defaults, normalizes paths, and validates the result.
func Resolve(overrides Config) (*Config, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withDefaults().
		build()
}

// ServiceBinary returns the data-platform executable name.
func (c *Config) ServiceBinary() string {
	return "mindforge"
}

// InterpreterBinary returns the Python interpreter executable name.
func (c *Config) InterpreterBinary() string {
	return "python3"
}

// PipBinary returns the package manager executable name.
func (c *Config) PipBinary() string {
	return "pip3"
}

// EnsureStorageDir creates the storage directory tree. Creating an
// already-existing tree is not an error.
func (c *Config) EnsureStorageDir() error {
	if err := os.MkdirAll(c.StoragePath, 0o755); err != nil {
		return fmt.Errorf("create storage directory %q: %w", c.StoragePath, err)
	}
	return nil
}

func (c *Config) normalize() error {
	configPath, err := expandPath(c.ConfigPath)
	if err != nil {
		return err
	}
	storagePath, err := expandPath(c.StoragePath)
	if err != nil {
		return err
	}
	c.ConfigPath = configPath
	c.StoragePath = storagePath
	return nil
}

// Validate checks the resolved configuration for values the service cannot
// start with. The port range check is deliberate; see DESIGN.md.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("config: host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range 1-65535", c.Port)
	}
	if strings.TrimSpace(c.ConfigPath) == "" {
		return fmt.Errorf("config: config path must not be empty")
	}
	if strings.TrimSpace(c.StoragePath) == "" {
		return fmt.Errorf("config: storage path must not be empty")
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
