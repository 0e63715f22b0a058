package descriptor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"forgectl/internal/config"
)

// Exists reports whether a descriptor is already present at the config path.
func Exists(cfg *config.Config) (bool, error) {
	_, err := os.Stat(cfg.ConfigPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat descriptor: %w", err)
}

// Materialize writes the descriptor at cfg.ConfigPath. Without force it is
// create-if-absent: a pre-existing file is left untouched and the call is a
// no-op. With force the file is fully rewritten, no backup kept. Returns
// whether a file was written.
func Materialize(cfg *config.Config, force bool) (bool, error) {
	if !force {
		exists, err := Exists(cfg)
		if err != nil {
			return false, err
		}
		if exists {
			return false, nil
		}
	}

	if dir := filepath.Dir(cfg.ConfigPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create config directory: %w", err)
		}
	}

	payload, err := toml.Marshal(Build(cfg))
	if err != nil {
		return false, fmt.Errorf("encode descriptor: %w", err)
	}
	if err := os.WriteFile(cfg.ConfigPath, payload, 0o644); err != nil {
		return false, fmt.Errorf("write descriptor: %w", err)
	}
	return true, nil
}
