package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/praetorian-inc/rxlab/pkg/session"
	"golang.org/x/term"
)

const keyCtrlC = 3

// Terminal is a line editor on a raw-mode TTY with in-session history
// (up/down arrows). Ctrl+D on an empty line ends input; Ctrl+C interrupts.
//
// While open, output must go through Write so newlines are translated for
// the raw terminal.
type Terminal struct {
	fd    int
	state *term.State
	t     *term.Terminal
	in    *interruptWatcher
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OpenTerminal puts in into raw mode. Close restores it.
func OpenTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	t := newTerminal(in, out)
	t.fd, t.state = fd, state
	return t, nil
}

func newTerminal(in io.Reader, out io.Writer) *Terminal {
	w := &interruptWatcher{r: in}
	rw := struct {
		io.Reader
		io.Writer
	}{w, out}
	return &Terminal{t: term.NewTerminal(rw, ""), in: w}
}

// ReadLine implements session.LineReader. x/term reports Ctrl+C as io.EOF;
// it is told apart from Ctrl+D by watching the input for the key and
// returned as session.ErrInterrupted.
func (t *Terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.t.SetPrompt(prompt)
	line, err := t.t.ReadLine()
	if errors.Is(err, term.ErrPasteIndicator) {
		// bracketed paste: the pasted line is still valid
		return line, nil
	}
	if errors.Is(err, io.EOF) && t.in.interrupted {
		t.in.interrupted = false
		return "", session.ErrInterrupted
	}
	return line, err
}

// Write writes to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.t.Write(p)
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

// interruptWatcher passes input through and notes a Ctrl+C keypress until
// the Terminal reports it.
type interruptWatcher struct {
	r           io.Reader
	interrupted bool
}

func (w *interruptWatcher) Read(p []byte) (int, error) {
	n, err := w.r.Read(p)
	if bytes.IndexByte(p[:n], keyCtrlC) >= 0 {
		w.interrupted = true
	}
	return n, err
}
