package rdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnsupportedFormat indicates an unsupported format.
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrCodeParseError indicates a general parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
	// ErrCodeEncodeError indicates a serialization failure.
	ErrCodeEncodeError ErrorCode = "ENCODE_ERROR"
	// ErrCodeIOError indicates an I/O error.
	ErrCodeIOError ErrorCode = "IO_ERROR"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeQuotedTriple indicates a quoted triple where a plain term was required.
	ErrCodeQuotedTriple ErrorCode = "QUOTED_TRIPLE"
	// ErrCodeInvalidTerm indicates a nil or unknown term implementation.
	ErrCodeInvalidTerm ErrorCode = "INVALID_TERM"
)

var (
	// ErrUnsupportedFormat indicates an unsupported format.
	ErrUnsupportedFormat = errors.New("unsupported RDF format")
	// ErrQuotedTriple indicates a quoted triple where a plain term was required.
	ErrQuotedTriple = errors.New("rdf: quoted triples are not supported")
	// ErrInvalidTerm indicates a nil or unknown term implementation.
	ErrInvalidTerm = errors.New("rdf: invalid term")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	// EOF is not an error condition
	if err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return ErrCodeUnsupportedFormat
	case errors.Is(err, ErrQuotedTriple):
		return ErrCodeQuotedTriple
	case errors.Is(err, ErrInvalidTerm):
		return ErrCodeInvalidTerm
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var encErr *EncodeError
	if errors.As(err, &encErr) {
		return ErrCodeEncodeError
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlyingCode := Code(parseErr.Err)
		if underlyingCode != ErrCodeParseError && underlyingCode != "" {
			return underlyingCode
		}
		return ErrCodeParseError
	}

	return ErrCodeParseError
}

// ParseError provides structured context for parse failures.
type ParseError struct {
	Format    string // Format name (e.g., "turtle", "jsonld")
	Statement string // Offending input excerpt, if known
	Line      int    // 1-based line number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		fmt.Fprintf(&msg, ":%d", e.Line)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if excerpt := e.excerpt(); excerpt != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt)
	}
	return msg.String()
}

func (e *ParseError) excerpt() string {
	const maxExcerptLen = 80
	statement := strings.TrimSpace(e.Statement)
	if len(statement) > maxExcerptLen {
		return statement[:maxExcerptLen] + "..."
	}
	return statement
}

func (e *ParseError) Unwrap() error { return e.Err }

// EncodeError reports a serialization failure for a given format.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return e.Format + ": encode: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

func wrapParseError(format, statement string, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Format == format {
		return err
	}
	return &ParseError{Format: format, Statement: statement, Err: err}
}

func wrapEncodeError(format string, err error) error {
	if err == nil {
		return nil
	}
	var encErr *EncodeError
	if errors.As(err, &encErr) {
		return err
	}
	return &EncodeError{Format: format, Err: err}
}
