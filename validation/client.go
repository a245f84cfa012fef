package validation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/internal/metrics"
	"github.com/sdsc-ordes/catplus-converters/rdf"
	"github.com/sdsc-ordes/catplus-converters/vocab"
)

// Engine validates data graphs against SHACL shapes.
type Engine interface {
	// IsAvailable reports whether the engine answers at all.
	IsAvailable(ctx context.Context) bool
	// Validate checks data against shapes, or against the engine's own
	// shapes when shapes is nil.
	Validate(ctx context.Context, data *graph.Store, shapes *graph.Store) (*Report, error)
}

const turtleMediaType = "text/turtle"

var _ Engine = (*Client)(nil)

// Client is an Engine backed by a shacl-api server
// (https://github.com/sdsc-ordes/shacl-api).
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. The default is http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every validation call in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient returns a client for the server at endpoint, for example
// "http://localhost:15400".
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the server base URL.
func (c *Client) Endpoint() string { return c.endpoint }

// IsAvailable sends GET {endpoint}/. Any HTTP response counts as available.
func (c *Client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("shacl-api unreachable", "endpoint", c.endpoint, "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return true
}

// Validate posts data, and shapes if not nil, as Turtle to
// {endpoint}/validate and parses the Turtle report.
func (c *Client) Validate(ctx context.Context, data *graph.Store, shapes *graph.Store) (*Report, error) {
	start := time.Now()
	report, err := c.validate(ctx, data, shapes)
	switch {
	case err != nil:
		c.metrics.RecordValidation(metrics.OutcomeError, time.Since(start))
	case report.Conforms:
		c.metrics.RecordValidation(metrics.OutcomeConforms, time.Since(start))
	default:
		c.metrics.RecordValidation(metrics.OutcomeViolates, time.Since(start))
	}
	return report, err
}

func (c *Client) validate(ctx context.Context, data *graph.Store, shapes *graph.Store) (*Report, error) {
	url := c.endpoint + "/validate"
	fail := func(status int, err error) (*Report, error) {
		return nil, &EngineError{Op: "validate", Endpoint: url, StatusCode: status, Err: err}
	}

	body, contentType, err := multipartBody(data, shapes)
	if err != nil {
		return fail(0, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", turtleMediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(resp.StatusCode, fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(msg))))
	}

	triples, err := rdf.DecodeTurtle(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("parse report: %w", err))
	}
	report := NewReport(graph.NewStoreFrom(triples))
	c.logger.Debug("validated graph",
		"endpoint", c.endpoint,
		"conforms", report.Conforms,
		"violations", report.Violations(),
		"report_triples", report.Graph.Len())
	return report, nil
}

// multipartBody builds the form: a "data" part (data.ttl) and, if shapes is
// not nil, a "shapes" part (shapes.ttl).
func multipartBody(data, shapes *graph.Store) (io.Reader, string, error) {
	if data == nil {
		data = graph.NewStore()
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeTurtlePart(w, "data", "data.ttl", data); err != nil {
		return nil, "", err
	}
	if shapes != nil {
		if err := writeTurtlePart(w, "shapes", "shapes.ttl", shapes); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeTurtlePart(w *multipart.Writer, field, filename string, g *graph.Store) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", turtleMediaType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	return rdf.Encode(part, rdf.FormatTurtle, g.Triples(), vocab.Prefixes())
}
