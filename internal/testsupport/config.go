package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"forgectl/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a resolved config seeded with unique temp directories
// per test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Config{
		Host:        "127.0.0.1",
		Port:        47334,
		ConfigPath:  filepath.Join(base, "config", "config.toml"),
		StoragePath: filepath.Join(base, "storage"),
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfg,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHostPort overrides the bind address on the test config.
func WithHostPort(host string, port int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Host = host
		b.cfg.Port = port
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the launcher's default external
// binaries are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"python3", "pip3", "mindforge"}
		}
		for _, name := range names {
			StubBinary(b.t, stubBinDir(b.baseDir), name, "#!/bin/sh\nexit 0\n")
		}
		prependPath(b.t, stubBinDir(b.baseDir))
	}
}

// StubBinary writes an executable shell script into dir and returns its path.
func StubBinary(t testing.TB, dir, name, script string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub bin dir: %v", err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}

// StubBinDir returns the stub executable directory backing the test config.
func StubBinDir(cfg *config.Config) string {
	return stubBinDir(BaseDir(cfg))
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.StoragePath)
}

func stubBinDir(base string) string {
	return filepath.Join(base, "bin")
}

func prependPath(t testing.TB, dir string) {
	t.Helper()
	oldPath := os.Getenv("PATH")
	newPath := dir
	if oldPath != "" {
		newPath = dir + string(os.PathListSeparator) + oldPath
	}
	t.Setenv("PATH", newPath)
}
