package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forgectl/internal/config"
)

func newRootCommand() *cobra.Command {
	var (
		overrides    config.Config
		installDeps  bool
		createConfig bool
		check        bool
	)

	rootCmd := &cobra.Command{
		Use:           "forgectl",
		Short:         "Prepare and launch the MindForge data platform",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case installDeps:
				return runInstallDeps(cmd, overrides)
			case createConfig:
				return runCreateConfig(cmd, overrides)
			case check:
				return runCheck(cmd, overrides)
			default:
				return runStart(cmd, overrides)
			}
		},
	}

	flags := rootCmd.Flags()
	// Registering the help flag without a shorthand keeps -h available for
	// --host.
	flags.Bool("help", false, "Show usage")
	flags.StringVarP(&overrides.Host, "host", "h", "", "Override the resolved bind host")
	flags.IntVarP(&overrides.Port, "port", "p", 0, "Override the resolved bind port")
	flags.StringVarP(&overrides.ConfigPath, "config", "c", "", "Override the resolved descriptor path")
	flags.StringVarP(&overrides.StoragePath, "storage", "s", "", "Override the resolved storage path")
	flags.BoolVar(&installDeps, "install-deps", false, "Install the optional integration packages, then exit")
	flags.BoolVar(&createConfig, "create-config", false, "Force-regenerate the configuration descriptor, then exit")
	flags.BoolVar(&check, "check", false, "Report external requirement status, then exit")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})

	return rootCmd
}
