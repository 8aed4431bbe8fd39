package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfirmRequiresCache(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	catalogDir = ""
	cachePath = ""
	confirmFrom = ""

	err := runConfirm(cmd, []string{"Simpson Chubby 2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cache")
}

func TestRunConfirmOwnMatch(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	dbPath := filepath.Join(t.TempDir(), "cache.db")
	catalogDir = ""
	cachePath = dbPath
	confirmFrom = ""
	defer func() { cachePath = "" }()

	err := runConfirm(cmd, []string{"Simpson Chubby 2"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "confirmed")

	// the confirmation now short-circuits matching
	buf.Reset()
	resetMatchFlags()
	cachePath = dbPath
	matchFormat = "json"
	err = runMatch(cmd, []string{"Simpson Chubby 2"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"correct_matches"`)
}

func TestRunConfirmRefusesUnmatched(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	catalogDir = ""
	cachePath = filepath.Join(t.TempDir(), "cache.db")
	confirmFrom = ""
	defer func() { cachePath = "" }()

	err := runConfirm(cmd, []string{"xyzzyqqqnonsense12345"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched")
}

func TestRunConfirmFromStdin(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader(`{
		"original": "my weird brush",
		"normalized": "my weird brush",
		"matched": {
			"brand": "Handmade",
			"model": null,
			"handle": {"brand": "Handmade"},
			"knot": {"brand": "Handmade", "fiber": "Boar"}
		}
	}`))

	dbPath := filepath.Join(t.TempDir(), "cache.db")
	catalogDir = ""
	cachePath = dbPath
	confirmFrom = "-"
	defer func() {
		cachePath = ""
		confirmFrom = ""
	}()

	err := runConfirm(cmd, []string{"my weird brush"})
	require.NoError(t, err)

	buf.Reset()
	resetMatchFlags()
	cachePath = dbPath
	matchFormat = "json"
	err = runMatch(cmd, []string{"my weird brush"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Handmade"`)
}
