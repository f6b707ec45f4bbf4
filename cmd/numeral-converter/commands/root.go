// Package commands implements the launcher for the converter window.
package commands

import (
	"fmt"
	"os"

	"numeral-converter/internal/app"
	"numeral-converter/internal/config"
	"numeral-converter/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

// Launcher starts the GUI with a validated configuration.
type Launcher func(cfg config.Config) error

func NewRootCmd(launch Launcher) *cobra.Command {
	defaults := config.Default()

	root := &cobra.Command{
		Use:          "numeral-converter",
		Short:        "Convert numerals between binary, octal, decimal and hexadecimal",
		Version:      app.AppVersion,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return launch(cfg)
		},
	}

	root.Flags().String(config.KeyLogLevel, defaults.LogLevel,
		fmt.Sprintf("log level: debug, info, warn or error (env %s)", config.EnvLogLevel))
	root.Flags().Bool(config.KeyJSONLogs, defaults.JSONLogs,
		fmt.Sprintf("write logs as JSON (env %s)", config.EnvJSONLogs))

	return root
}

func Execute() error {
	return NewRootCmd(launchGUI).Execute()
}

func launchGUI(cfg config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, level, cfg.JSONLogs)
	application := app.NewApplication(fyneapp.NewWithID(app.AppID), log)
	return application.Run()
}
