package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"forgectl/internal/config"
	"forgectl/internal/deps"
	"forgectl/internal/descriptor"
	"forgectl/internal/logging"
)

// ErrInterrupted reports that the run was aborted by an external signal.
var ErrInterrupted = errors.New("startup interrupted")

// apiModes is the fixed API surface the service is launched with.
const apiModes = "http,sql"

// Option configures the sequencer.
type Option func(*Sequencer)

// WithOutput redirects the launched service's stdout and stderr
// (primarily for tests).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Sequencer) {
		if stdout != nil {
			s.stdout = stdout
		}
		if stderr != nil {
			s.stderr = stderr
		}
	}
}

// Sequencer runs the ordered startup sequence for one resolved config.
type Sequencer struct {
	cfg    *config.Config
	pip    deps.Installer
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// New constructs a Sequencer.
func New(cfg *config.Config, pip deps.Installer, logger *slog.Logger, opts ...Option) *Sequencer {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Sequencer{
		cfg:    cfg,
		pip:    pip,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the startup sequence and blocks until the service process
// exits or the context is cancelled.
func (s *Sequencer) Run(ctx context.Context) error {
	if err := interrupted(ctx); err != nil {
		return err
	}
	if err := deps.VerifyPrerequisites(s.cfg); err != nil {
		return err
	}
	if err := deps.EnsureService(ctx, s.cfg, s.pip, s.logger); err != nil {
		return err
	}

	if err := interrupted(ctx); err != nil {
		return err
	}
	env := Environ(s.cfg)
	s.logger.Debug("environment assembled",
		logging.Int("bindings", len(Bindings(s.cfg))))

	if err := interrupted(ctx); err != nil {
		return err
	}
	written, err := descriptor.Materialize(s.cfg, false)
	if err != nil {
		return err
	}
	if written {
		s.logger.Info("configuration descriptor created",
			logging.String("path", s.cfg.ConfigPath))
	} else {
		s.logger.Debug("configuration descriptor already present",
			logging.String("path", s.cfg.ConfigPath))
	}

	if err := interrupted(ctx); err != nil {
		return err
	}
	if err := s.cfg.EnsureStorageDir(); err != nil {
		return err
	}

	if err := interrupted(ctx); err != nil {
		return err
	}
	return s.launchService(ctx, env)
}

func (s *Sequencer) launchService(ctx context.Context, env []string) error {
	s.logger.Info("launching service",
		logging.String("binary", s.cfg.ServiceBinary()),
		logging.String("config", s.cfg.ConfigPath),
		logging.String("api", apiModes))

	cmd := exec.CommandContext(ctx, s.cfg.ServiceBinary(),
		"--config", s.cfg.ConfigPath,
		"--api", apiModes,
	) //nolint:gosec
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	err := cmd.Run()
	if ctxErr := interrupted(ctx); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("service process: %w", err)
	}
	return nil
}

func interrupted(ctx context.Context) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
	}
	return nil
}
