package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sdsc-ordes/catplus-converters/convert"
)

func convertCmd(a *app) *cobra.Command {
	var (
		format            string
		strategy          string
		uriBase           string
		materialize       bool
		materializePrefix string
		validate          bool
		endpoint          string
		shapes            string
	)

	cmd := &cobra.Command{
		Use:   "convert <input-type> <input.json> <output>",
		Short: "Convert a JSON record to RDF",
		Long: `Convert a JSON record to RDF.

Input types: synth (Chemspeed Synth batch), bravo (Agilent Bravo batch),
hci (HCI campaign), agilent (Agilent ASM liquid chromatography document).
Use "-" to read from stdin or write to stdout.`,
		Example: `  catplus convert synth 1-Synth.json synth.ttl
  catplus convert agilent run.json - --format jsonld
  catplus convert hci campaign.json campaign.ttl --validate -e http://localhost:15400`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: convert.InputTypes(),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			inputType, err := convert.ParseInputType(args[0])
			if err != nil {
				return err
			}

			out := &a.cfg.Output
			flags := cmd.Flags()
			if flags.Changed("format") {
				out.Format = format
			}
			if flags.Changed("strategy") {
				out.NodeStrategy = strategy
			}
			if flags.Changed("uri-base") {
				out.URIBase = uriBase
			}
			if flags.Changed("materialize") {
				out.Materialize = materialize
			}
			if flags.Changed("materialize-prefix") {
				out.MaterializePrefix = materializePrefix
			}
			if flags.Changed("endpoint") {
				a.cfg.Validation.Endpoint = endpoint
			}
			if flags.Changed("shapes") {
				a.cfg.Validation.Shapes = shapes
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			data, err := readAll(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := convert.JSONToRDF(data, inputType, convert.Options{
				Format:            out.RDFFormat(),
				Strategy:          out.Strategy(),
				URIBase:           out.URIBase,
				Materialize:       out.Materialize,
				MaterializePrefix: out.MaterializePrefix,
				Logger:            a.logger,
				Metrics:           a.metrics,
			})
			if err != nil {
				return err
			}

			w, err := createOutput(args[2], cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if _, err := w.Write([]byte(res.Output)); err != nil {
				w.Close()
				return fmt.Errorf("failed to write output: %w", err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			a.logger.Info("Conversion successful", slog.String("output", args[2]), slog.Int("triples", res.Graph.Len()))

			if !validate {
				return nil
			}
			report, err := a.validate(cmd, res.Graph)
			if err != nil {
				return err
			}
			if !report.Conforms {
				return fmt.Errorf("graph does not conform to the shapes (%d violations)", report.Violations())
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format (turtle, jsonld)")
	cmd.Flags().StringVar(&strategy, "strategy", "blank", "Node identity strategy (blank, uri)")
	cmd.Flags().StringVar(&uriBase, "uri-base", "", "Namespace for minted node URIs")
	cmd.Flags().BoolVar(&materialize, "materialize", false, "Replace blank nodes by URIs before serializing")
	cmd.Flags().StringVar(&materializePrefix, "materialize-prefix", "", "Namespace of materialized nodes (default: the URI base)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate the graph after converting it")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "shacl-api endpoint (default from config)")
	cmd.Flags().StringVarP(&shapes, "shapes", "s", "", "Turtle file with SHACL shapes (default: the engine's shapes)")
	return cmd
}
