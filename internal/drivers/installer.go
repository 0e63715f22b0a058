package drivers

import (
	"context"
	"log/slog"

	"forgectl/internal/logging"
)

// PackageInstaller is the subset of the pip client the installer needs.
type PackageInstaller interface {
	Install(ctx context.Context, packages []string, onOutput func(string)) error
}

// Installer runs the driver catalogue through the package manager.
type Installer struct {
	pip    PackageInstaller
	logger *slog.Logger
}

// NewInstaller constructs an Installer.
func NewInstaller(pip PackageInstaller, logger *slog.Logger) *Installer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Installer{pip: pip, logger: logger}
}

// InstallAll attempts every catalogue group in order. A group failure is
// reported and skipped; remaining groups still run. The pip output itself
// is the operator's failure detail, so InstallAll never fails the run.
// Context cancellation is the only early exit.
func (i *Installer) InstallAll(ctx context.Context) error {
	for _, group := range Catalogue() {
		if err := ctx.Err(); err != nil {
			return err
		}
		i.logger.Info("installing integration packages",
			logging.String("group", group.Name),
			logging.Int("packages", len(group.Packages)))
		if err := i.pip.Install(ctx, group.Packages, nil); err != nil {
			i.logger.Warn("integration group install failed",
				logging.String("group", group.Name),
				logging.Error(err))
		}
	}
	return nil
}
