// Package source acquires the text buffer a session works on: a literal
// argument, a file, or lines typed interactively.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Kind classifies a text source failure.
type Kind int

const (
	KindNotFound Kind = iota // file does not exist
	KindRead                 // file could not be read
	KindNoInput              // interactive input was empty
)

// Error is a text source failure. It aborts startup.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("file not found - %s", e.Path)
	case KindRead:
		return fmt.Sprintf("reading file: %v", e.Err)
	default:
		return "no text provided"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LineReader supplies lines of interactive input.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Options selects the text source. Text wins over File; when both are
// empty the text is read interactively.
type Options struct {
	Text string
	File string
}

// Interactive reports whether opts needs interactive input.
func (o Options) Interactive() bool {
	return o.Text == "" && o.File == ""
}

// Load returns the text selected by opts, reading from in when interactive.
func Load(ctx context.Context, opts Options, in LineReader) (string, error) {
	switch {
	case opts.Text != "":
		return opts.Text, nil
	case opts.File != "":
		return FromFile(opts.File)
	default:
		return FromLines(ctx, in)
	}
}

// FromFile reads a whole file as text.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return "", &Error{Kind: KindRead, Path: path, Err: err}
	}
	return string(data), nil
}

// FromLines accumulates lines until end of input and joins them with
// newlines. No text at all is a KindNoInput error; an interruption is
// returned as is.
func FromLines(ctx context.Context, in LineReader) (string, error) {
	var lines []string
	for {
		line, err := in.ReadLine(ctx, "")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	text := strings.Join(lines, "\n")
	if text == "" {
		return "", &Error{Kind: KindNoInput}
	}
	return text, nil
}
