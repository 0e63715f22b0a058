package drivers

import (
	"context"
	"errors"
	"testing"
)

type scriptedInstaller struct {
	calls [][]string
	errAt int
}

func (s *scriptedInstaller) Install(ctx context.Context, packages []string, onOutput func(string)) error {
	s.calls = append(s.calls, packages)
	if len(s.calls) == s.errAt {
		return errors.New("exit status 1")
	}
	return nil
}

func TestInstallAllCoversCatalogue(t *testing.T) {
	pip := &scriptedInstaller{}
	installer := NewInstaller(pip, nil)

	if err := installer.InstallAll(context.Background()); err != nil {
		t.Fatalf("install all: %v", err)
	}

	groups := Catalogue()
	if len(pip.calls) != len(groups) {
		t.Fatalf("expected %d pip calls, got %d", len(groups), len(pip.calls))
	}
	for i, group := range groups {
		if len(pip.calls[i]) != len(group.Packages) {
			t.Fatalf("group %q: expected %d packages, got %v", group.Name, len(group.Packages), pip.calls[i])
		}
	}
}

func TestInstallAllContinuesPastGroupFailure(t *testing.T) {
	pip := &scriptedInstaller{errAt: 1}
	installer := NewInstaller(pip, nil)

	if err := installer.InstallAll(context.Background()); err != nil {
		t.Fatalf("expected group failure to be swallowed, got %v", err)
	}
	if len(pip.calls) != len(Catalogue()) {
		t.Fatalf("expected all groups attempted, got %d calls", len(pip.calls))
	}
}

func TestInstallAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pip := &scriptedInstaller{}
	installer := NewInstaller(pip, nil)

	if err := installer.InstallAll(ctx); err == nil {
		t.Fatal("expected context error")
	}
	if len(pip.calls) != 0 {
		t.Fatalf("expected no pip calls after cancellation, got %d", len(pip.calls))
	}
}

func TestCatalogueShape(t *testing.T) {
	seen := map[string]bool{}
	for _, group := range Catalogue() {
		if group.Name == "" || len(group.Packages) == 0 {
			t.Fatalf("malformed group: %#v", group)
		}
		for _, pkg := range group.Packages {
			if seen[pkg] {
				t.Fatalf("package %q listed twice", pkg)
			}
			seen[pkg] = true
		}
	}
}
