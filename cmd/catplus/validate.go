package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/validation"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

var errNoEndpoint = errors.New("no shacl-api endpoint: use --endpoint or set validation.endpoint")

func validateCmd(a *app) *cobra.Command {
	var (
		output   string
		shapes   string
		endpoint string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "validate [input.ttl]",
		Short: "Validate a Turtle graph against SHACL shapes",
		Long: `Validate a Turtle graph with a shacl-api server and write the SHACL
validation report as Turtle. The input defaults to stdin and the report to
stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			input := stdioPath
			if len(args) == 1 {
				input = args[0]
			}
			if cmd.Flags().Changed("endpoint") {
				a.cfg.Validation.Endpoint = endpoint
			}
			if cmd.Flags().Changed("shapes") {
				a.cfg.Validation.Shapes = shapes
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			data, err := loadTurtle(input, cmd)
			if err != nil {
				return err
			}
			report, err := a.validate(cmd, data)
			if err != nil {
				return err
			}

			w, err := createOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			encodeErr := rdf.Encode(w, rdf.FormatTurtle, report.Graph.Triples(), reportPrefixes())
			if err := errors.Join(encodeErr, w.Close()); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if strict && !report.Conforms {
				return fmt.Errorf("graph does not conform to the shapes (%d violations)", report.Violations())
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdioPath, "Path of the validation report")
	cmd.Flags().StringVarP(&shapes, "shapes", "s", "", "Turtle file with SHACL shapes (default: the engine's shapes)")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "shacl-api endpoint (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the graph does not conform")
	return cmd
}

// validate sends data to the configured engine.
func (a *app) validate(cmd *cobra.Command, data *graph.Store) (*validation.Report, error) {
	cfg := a.cfg.Validation
	if cfg.Endpoint == "" {
		return nil, errNoEndpoint
	}

	var shapes *graph.Store
	if cfg.Shapes != "" {
		var err error
		if shapes, err = loadTurtle(cfg.Shapes, cmd); err != nil {
			return nil, fmt.Errorf("shapes: %w", err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	client := validation.NewClient(cfg.Endpoint,
		validation.WithLogger(a.logger),
		validation.WithMetrics(a.metrics),
	)
	if !client.IsAvailable(ctx) {
		return nil, fmt.Errorf("SHACL API is not available at %s", cfg.Endpoint)
	}
	report, err := client.Validate(ctx, data, shapes)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Validation finished",
		slog.Bool("conforms", report.Conforms),
		slog.Int("violations", report.Summary[validation.SeverityViolation]),
		slog.Int("warnings", report.Summary[validation.SeverityWarning]))
	return report, nil
}

func loadTurtle(path string, cmd *cobra.Command) (*graph.Store, error) {
	r, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer r.Close()
	triples, err := rdf.Decode(r, rdf.FormatTurtle)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return graph.NewStoreFrom(triples), nil
}

// reportPrefixes is the output prefix table plus sh.
func reportPrefixes() map[string]string {
	prefixes := vocab.Prefixes()
	prefixes["sh"] = vocab.SH
	return prefixes
}
