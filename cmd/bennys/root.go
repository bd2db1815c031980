package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bennysutils/bennys-utils/internal/config"
	"github.com/bennysutils/bennys-utils/internal/logging"
)

// errNoValue reports that a prompt ran out of attempts without an answer.
var errNoValue = errors.New("no value")

// app carries state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Configuration
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bennys",
		Short:         "Small utilities for formatting money and asking questions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error or none")

	root.AddCommand(
		newMoneyCmd(a),
		newAskCmd(a),
		newSymbolsCmd(),
	)
	return root
}

// load reads the configuration file, if any, and builds the logger.
// Flags win over file values.
func (a *app) load(cmd *cobra.Command) error {
	a.cfg = config.DefaultConfig()
	if a.configPath != "" {
		cfg, err := config.NewInputParser().LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("log-level") {
		a.cfg.Logging.Level = a.logLevel
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	a.logger = logger
	a.logger.Debugf("configuration loaded from %q", a.configPath)
	return nil
}
