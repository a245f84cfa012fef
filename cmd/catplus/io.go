package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// stdioPath selects stdin or stdout.
const stdioPath = "-"

// openInput opens path for reading, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdioPath {
		return io.NopCloser(bufio.NewReader(stdin)), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input file %q does not exist", path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a valid file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	return f, nil
}

// createOutput creates path for writing, or wraps stdout for "-". Close
// flushes buffered output.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == stdioPath {
		return &bufferedWriter{Writer: bufio.NewWriter(stdout)}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return &bufferedWriter{Writer: bufio.NewWriter(f), closer: f}, nil
}

type bufferedWriter struct {
	*bufio.Writer
	closer io.Closer
}

func (w *bufferedWriter) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func readAll(path string, stdin io.Reader) ([]byte, error) {
	r, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return data, nil
}
