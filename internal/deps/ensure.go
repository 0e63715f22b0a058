package deps

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"forgectl/internal/config"
	"forgectl/internal/logging"
)

// ServicePackage is the pip package that provides the service binary.
const ServicePackage = "mindforge"

// Installer is the subset of the pip client EnsureService needs.
type Installer interface {
	Install(ctx context.Context, packages []string, onOutput func(string)) error
}

// EnsureService installs the service package when the service binary is not
// on PATH. When the binary is already present no mutation occurs. The
// installation result is not re-verified; a failed install surfaces later
// as a launch failure.
func EnsureService(ctx context.Context, cfg *config.Config, installer Installer, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	if _, err := exec.LookPath(cfg.ServiceBinary()); err == nil {
		return nil
	}
	logger.Info("service binary missing, installing",
		logging.String("binary", cfg.ServiceBinary()),
		logging.String("package", ServicePackage))
	if err := installer.Install(ctx, []string{ServicePackage}, nil); err != nil {
		return fmt.Errorf("install service package: %w", err)
	}
	return nil
}
