package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runVersion(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "rxlab vdev (commit unknown)\n")
	assert.Contains(t, output, "Engines: re2, regexp2 (default regexp2)\n")
	assert.Contains(t, output, "Colors: red, green, yellow, blue, magenta, cyan (default red)\n")
	assert.Contains(t, output, runtime.GOOS+"/"+runtime.GOARCH)
}
