package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	zerotrust "github.com/zero-trust-ai/framework"
	"github.com/zero-trust-ai/framework/pkg/cli"
	"github.com/zero-trust-ai/framework/pkg/config"
	"github.com/zero-trust-ai/framework/pkg/telemetry/logging"
)

// skipConfigAnnotation marks commands that load configuration themselves.
const skipConfigAnnotation = "zero-trust/skip-config"

// app is the state shared by every command of one invocation.
type app struct {
	// Global flags
	cfgFile string
	envFile string
	verbose bool
	output  string

	cfg          *config.Config
	configSource string
	logger       *logging.Logger
	styles       *cli.Styles
	format       cli.OutputFormat
}

// Execute runs the root command.
func Execute() {
	ctx := cli.SetupSignalHandler()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop(), styles: cli.PlainStyles(), format: cli.FormatText}

	rootCmd := &cobra.Command{
		Use:   "zero-trust",
		Short: "Zero-Trust AI - secure AI agents with zero-trust principles",
		Long: `Zero-Trust AI is an open-source framework for building secure AI agents
with zero-trust principles.

This is a pre-alpha release (Stage 0). It ships the project foundation:
version metadata, configuration and structured logging. Guardian evaluation,
MCP security, RAG-sourced policies and multi-agent security are planned for
later stages; run "zero-trust roadmap" to see them.

For more information, visit: https://zero-trust.ai`,
		Version:       zerotrust.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before environment overrides")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format (text, json, yaml)")

	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newRoadmapCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// setup attaches the run context and, unless the command opts out, loads
// configuration and builds the logger, styles and output format.
func (a *app) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, logging.NewRunID())
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	cmd.SetContext(ctx)

	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return a.configure(cmd, config.Default())
	}

	cfg, err := config.Load(a.loadOptions(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := a.configure(cmd, cfg); err != nil {
		return err
	}

	a.logger.DebugContext(ctx, "configuration loaded", "source", a.configSource)
	return nil
}

// loadOptions builds config.LoadOptions from the global flags. Files named
// explicitly on the command line must exist.
func (a *app) loadOptions(cmd *cobra.Command) config.LoadOptions {
	flags := cmd.Flags()
	return config.LoadOptions{
		Path:            a.cfgFile,
		Required:        flags.Changed("config"),
		EnvFile:         a.envFile,
		EnvFileRequired: flags.Changed("env-file"),
	}
}

// configure applies a loaded configuration and the flag overrides.
func (a *app) configure(cmd *cobra.Command, cfg *config.Config) error {
	if a.verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}

	format, err := cli.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.ConfigFrom(cfg.Telemetry.Logging, cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.configSource = configSource(a.cfgFile)
	a.logger = logger
	a.format = format
	a.styles = cli.NewStyles(cmd.OutOrStdout(), !cfg.Output.NoColor)
	config.SetConfig(cfg)
	return nil
}

// print writes a command result in the selected output format.
func (a *app) print(cmd *cobra.Command, result any) error {
	return cli.NewFormatter(a.format, a.styles).FormatTo(cmd.OutOrStdout(), result)
}

// configSource describes where configuration came from.
func configSource(path string) string {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "defaults"
	}
	return path
}
