package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"forgectl/internal/descriptor"
	"forgectl/internal/drivers"
	"forgectl/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// pointPathsAtTempDir redirects the resolved config and storage paths into a
// fresh temp directory and returns them.
func pointPathsAtTempDir(t *testing.T) (configPath, storagePath string) {
	t.Helper()
	base := t.TempDir()
	configPath = filepath.Join(base, "config", "config.toml")
	storagePath = filepath.Join(base, "storage")
	t.Setenv("MINDFORGE_CONFIG", configPath)
	t.Setenv("MINDFORGE_STORAGE", storagePath)
	t.Setenv("MINDFORGE_HOST", "")
	os.Unsetenv("MINDFORGE_HOST")
	t.Setenv("MINDFORGE_PORT", "")
	os.Unsetenv("MINDFORGE_PORT")
	return configPath, storagePath
}

func TestUnknownFlagPrintsUsageAndFails(t *testing.T) {
	configPath, _ := pointPathsAtTempDir(t)

	output, err := executeCommand(t, "--bogus")
	if err == nil {
		t.Fatal("expected unknown flag to fail")
	}
	combined := output + err.Error()
	if !strings.Contains(combined, "bogus") {
		t.Fatalf("expected offending token in output, got: %s", combined)
	}
	if !strings.Contains(combined, "Usage:") {
		t.Fatalf("expected usage text, got: %s", combined)
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatal("usage error must not create a config file")
	}
}

func TestHelpExitsCleanly(t *testing.T) {
	pointPathsAtTempDir(t)

	output, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(output, "forgectl") {
		t.Fatalf("expected usage output, got: %s", output)
	}
	if !strings.Contains(output, "--create-config") {
		t.Fatalf("expected flag listing in usage, got: %s", output)
	}
}

func TestCreateConfigWithOverrides(t *testing.T) {
	configPath, storagePath := pointPathsAtTempDir(t)

	output, err := executeCommand(t, "--create-config", "--port", "9999", "-h", "127.0.0.1")
	if err != nil {
		t.Fatalf("--create-config: %v", err)
	}
	if !strings.Contains(output, configPath) {
		t.Fatalf("expected written path in output, got: %s", output)
	}

	payload, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	var doc descriptor.Document
	if err := toml.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("decode descriptor: %v", err)
	}
	if doc.API.Host != "127.0.0.1" || doc.API.Port != 9999 {
		t.Fatalf("overrides not applied: %#v", doc.API)
	}
	if doc.StorageDir != storagePath {
		t.Fatalf("storage dir should come from the resolved config: %s", doc.StorageDir)
	}
}

func TestCreateConfigAlwaysOverwrites(t *testing.T) {
	configPath, _ := pointPathsAtTempDir(t)

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("# stale\n"), 0o644); err != nil {
		t.Fatalf("seed descriptor: %v", err)
	}

	if _, err := executeCommand(t, "--create-config"); err != nil {
		t.Fatalf("--create-config: %v", err)
	}

	payload, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	if strings.Contains(string(payload), "# stale") {
		t.Fatal("expected forced overwrite of existing descriptor")
	}
}

func TestShortHostFlagIsNotHelp(t *testing.T) {
	configPath, _ := pointPathsAtTempDir(t)

	if _, err := executeCommand(t, "--create-config", "-h", "10.1.2.3"); err != nil {
		t.Fatalf("-h as host override: %v", err)
	}

	payload, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	var doc descriptor.Document
	if err := toml.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("decode descriptor: %v", err)
	}
	if doc.API.Host != "10.1.2.3" {
		t.Fatalf("-h did not override host: %s", doc.API.Host)
	}
}

func TestCheckRendersRequirementTable(t *testing.T) {
	configPath, _ := pointPathsAtTempDir(t)

	output, err := executeCommand(t, "--check")
	if err != nil {
		t.Fatalf("--check: %v", err)
	}
	for _, fragment := range []string{"Requirement", "Python", "pip", "MindForge", "Storage directory"} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in check output, got: %s", fragment, output)
		}
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatal("--check must not create a config file")
	}
}

func TestInstallDepsOnlyCallsPackageManager(t *testing.T) {
	configPath, storagePath := pointPathsAtTempDir(t)

	binDir := t.TempDir()
	logFile := filepath.Join(binDir, "pip-calls.log")
	script := "#!/bin/sh\necho \"$@\" >> " + logFile + "\nexit 0\n"
	testsupport.StubBinary(t, binDir, "pip3", script)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	if _, err := executeCommand(t, "--install-deps"); err != nil {
		t.Fatalf("--install-deps: %v", err)
	}

	payload, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("pip was not invoked: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	if len(lines) != len(drivers.Catalogue()) {
		t.Fatalf("expected one pip call per group, got %d: %v", len(lines), lines)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "install ") {
			t.Fatalf("unexpected pip invocation: %s", line)
		}
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatal("--install-deps must not create a config file")
	}
	if _, statErr := os.Stat(storagePath); !os.IsNotExist(statErr) {
		t.Fatal("--install-deps must not create the storage directory")
	}
}

func TestRejectsPositionalArgs(t *testing.T) {
	pointPathsAtTempDir(t)

	if _, err := executeCommand(t, "unexpected"); err == nil {
		t.Fatal("expected positional arguments to be rejected")
	}
}
