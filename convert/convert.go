package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/internal/metrics"
	"github.com/sdsc-ordes/catplus-converters/rdf"
)

// Stage names a step of the conversion pipeline.
type Stage string

const (
	StageParse       Stage = "parse"
	StageBuild       Stage = "build graph"
	StageMaterialize Stage = "materialize"
	StageSerialize   Stage = "serialize"
)

// StageError reports the pipeline stage a conversion failed at.
type StageError struct {
	Stage Stage
	Input InputType
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("convert %s: %s: %v", e.Input, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Options configures a conversion. The zero value writes Turtle with blank
// nodes.
type Options struct {
	Format   rdf.Format
	Strategy graph.Strategy

	// URIBase is the namespace of minted node URIs. Empty means
	// graph.DefaultBase.
	URIBase string

	// Materialize replaces every blank node by a URI under
	// MaterializePrefix before serializing. An empty prefix uses the URI
	// base.
	Materialize       bool
	MaterializePrefix string

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Result is a finished conversion.
type Result struct {
	Output string
	Graph  *graph.Store
}

// JSONToRDF decodes data as inputType, projects it into a graph and
// serializes the graph. Nothing is returned on failure.
func JSONToRDF(data []byte, inputType InputType, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	format := opts.Format
	if format == "" {
		format = rdf.FormatTurtle
	}
	start := time.Now()

	fail := func(stage Stage, err error) (*Result, error) {
		opts.Metrics.RecordConversionError(string(inputType), string(stage))
		logger.Debug("conversion failed", "input_type", string(inputType), "stage", string(stage), "error", err)
		return nil, &StageError{Stage: stage, Input: inputType, Err: err}
	}

	record, err := newRecord(inputType)
	if err != nil {
		return fail(StageParse, err)
	}
	if err := json.Unmarshal(data, record); err != nil {
		return fail(StageParse, err)
	}

	b := graph.NewBuilder(opts.Strategy,
		graph.WithAllocator(graph.NewAllocator(opts.URIBase)),
		graph.WithLogger(logger),
	)
	if err := b.Insert(record); err != nil {
		return fail(StageBuild, err)
	}

	if opts.Materialize {
		if err := b.MaterializeBlankNodes(opts.MaterializePrefix); err != nil {
			return fail(StageMaterialize, err)
		}
	}

	out, err := b.Serialize(format)
	if err != nil {
		return fail(StageSerialize, err)
	}

	opts.Metrics.RecordConversion(string(inputType), b.Graph().Len(), time.Since(start))
	logger.Info("converted input",
		"input_type", string(inputType),
		"format", string(format),
		"strategy", opts.Strategy.String(),
		"triples", b.Graph().Len())
	return &Result{Output: out, Graph: b.Graph()}, nil
}

// Convert reads all of r, converts it and writes the result to w.
func Convert(r io.Reader, w io.Writer, inputType InputType, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &StageError{Stage: StageParse, Input: inputType, Err: err}
	}
	res, err := JSONToRDF(data, inputType, opts)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, res.Output); err != nil {
		return nil, fmt.Errorf("convert %s: write output: %w", inputType, err)
	}
	return res, nil
}
