// Package console provides line readers for the interactive prompt.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

type lineResult struct {
	line string
	err  error
}

// Reader reads lines from a plain stream (a pipe, a file, a test buffer).
// Prompts are written to out. Reads can be abandoned through the context;
// the line being read is then delivered to the next call. Close releases
// the background scanner once its pending read returns.
type Reader struct {
	in      io.Reader
	out     io.Writer
	lines   chan lineResult
	stop    chan struct{}
	stopped chan struct{} // closed when the scanner goroutine returns
	done    error         // sticky terminal error
}

// NewReader creates a Reader over in. out may be nil to skip prompts.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: in, out: out, stop: make(chan struct{})}
}

func (r *Reader) start() {
	r.lines = make(chan lineResult)
	r.stopped = make(chan struct{})
	go func() {
		defer close(r.stopped)
		defer close(r.lines)
		scanner := bufio.NewScanner(r.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if !r.send(lineResult{line: strings.TrimSuffix(scanner.Text(), "\r")}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.send(lineResult{err: fmt.Errorf("reading input: %w", err)})
			return
		}
		r.send(lineResult{err: io.EOF})
	}()
}

// send hands res to a reader, giving up once the Reader is closed.
func (r *Reader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.stop:
		return false
	}
}

// Close stops delivering lines. Later reads return io.EOF.
func (r *Reader) Close() error {
	if r.done == nil {
		r.done = io.EOF
	}
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
	return nil
}

// ReadLine implements session.LineReader.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if r.done != nil {
		return "", r.done
	}
	if r.lines == nil {
		r.start()
	}
	if r.out != nil && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			r.done = io.EOF
			return "", io.EOF
		}
		if res.err != nil {
			r.done = res.err
			return "", res.err
		}
		return res.line, nil
	}
}
