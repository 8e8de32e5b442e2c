package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/praetorian-inc/rxlab/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Lines(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(strings.NewReader("first\rsecond\r\x04"), &out)
	ctx := context.Background()

	for _, want := range []string{"first", "second"} {
		line, err := term.ReadLine(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := term.ReadLine(ctx, "> ")
	assert.Equal(t, io.EOF, err)
	assert.Contains(t, out.String(), "> ")
	assert.NoError(t, term.Close())
}

func TestTerminal_CtrlCInterrupts(t *testing.T) {
	term := newTerminal(strings.NewReader("partial\x03"), io.Discard)

	_, err := term.ReadLine(context.Background(), "")

	assert.ErrorIs(t, err, session.ErrInterrupted)
}

func TestTerminal_CtrlCAfterLine(t *testing.T) {
	term := newTerminal(strings.NewReader("kept\r\x03"), io.Discard)
	ctx := context.Background()

	line, err := term.ReadLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "kept", line)

	_, err = term.ReadLine(ctx, "")
	assert.ErrorIs(t, err, session.ErrInterrupted)
}

func TestTerminal_CancelledContext(t *testing.T) {
	term := newTerminal(strings.NewReader("unused\r"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.ReadLine(ctx, "")

	assert.ErrorIs(t, err, context.Canceled)
}
