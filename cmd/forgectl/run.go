package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"forgectl/internal/config"
	"forgectl/internal/deps"
	"forgectl/internal/descriptor"
	"forgectl/internal/drivers"
	"forgectl/internal/launcher"
	"forgectl/internal/logging"
	"forgectl/internal/services/pip"
)

const installTimeout = 30 * time.Minute

func newLogger() (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  os.Getenv("MINDFORGE_LOG_LEVEL"),
		Format: os.Getenv("MINDFORGE_LOG_FORMAT"),
	})
}

func runStart(cmd *cobra.Command, overrides config.Config) error {
	cfg, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pipClient, err := pip.New(cfg.PipBinary(), pip.WithTimeout(installTimeout))
	if err != nil {
		return err
	}

	seq := launcher.New(cfg, pipClient, logger)
	if err := seq.Run(signalCtx); err != nil {
		var precondition *deps.PreconditionError
		if errors.As(err, &precondition) {
			fmt.Fprintln(cmd.ErrOrStderr(), renderRequirements(deps.Check(cfg)))
		}
		return err
	}
	return nil
}

func runInstallDeps(cmd *cobra.Command, overrides config.Config) error {
	cfg, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pipClient, err := pip.New(cfg.PipBinary(), pip.WithTimeout(installTimeout))
	if err != nil {
		return err
	}

	return drivers.NewInstaller(pipClient, logger).InstallAll(signalCtx)
}

func runCreateConfig(cmd *cobra.Command, overrides config.Config) error {
	cfg, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	if _, err := descriptor.Materialize(cfg, true); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration descriptor to %s\n", cfg.ConfigPath)
	return nil
}

func runCheck(cmd *cobra.Command, overrides config.Config) error {
	cfg, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	statuses := deps.Check(cfg)
	statuses = append(statuses, deps.CheckDirectoryAccess("Storage directory", cfg.StoragePath))
	fmt.Fprintln(cmd.OutOrStdout(), renderRequirements(statuses))
	return nil
}
