package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/sdsc-ordes/catplus-converters/config"
	"github.com/sdsc-ordes/catplus-converters/internal/metrics"
)

// app is the state shared by all subcommands, set up before any of them
// runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	textfile   string

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert CAT+ experiment records to RDF",
		Long: `catplus converts structured experiment records (Chemspeed Synth and
Agilent Bravo batches, HCI campaigns, Agilent liquid chromatography
documents) into RDF graphs following the CAT+ ontology, and validates RDF
graphs against SHACL shapes with a shacl-api server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML, default ./"+config.ProjectConfigFile+")")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVar(&a.textfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(
		convertCmd(a),
		validateCmd(a),
		versionCmd(),
	)
	return cmd
}

// setup loads the configuration, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	bootstrap := setupLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	cfg, err := config.NewLoader(bootstrap).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = a.textfile
	}

	a.cfg = cfg
	a.logger = setupLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Metrics.Textfile != "" {
		a.metrics = metrics.New()
	}
	return nil
}

// runE wraps a subcommand body so metrics are written whether it fails or
// not.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if werr := a.metrics.WriteToTextfile(a.cfg.Metrics.Textfile); werr != nil {
			err = multierr.Append(err, fmt.Errorf("write metrics: %w", werr))
		}
		return err
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip config loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
