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
	assert.Contains(t, output, "brushmatch v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, runtime.Version())
}
