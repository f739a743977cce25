package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRunsInteractiveSession(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader("8\n"))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--export-dir", t.TempDir()})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "=== Book Catalog ===")
	assert.Contains(t, output, "8. Exit")
	assert.Contains(t, output, "Goodbye!")
}

func TestRootSessionEndToEnd(t *testing.T) {
	dir := t.TempDir()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader("1\nDune\nHerbert\nSciFi\n7\n8\n"))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "yaml", "--export-dir", dir})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Book added successfully!")
	assert.Contains(t, output, "Export complete: ")
	assert.Contains(t, output, ".yaml")

	exports, globErr := filepath.Glob(filepath.Join(dir, "books_export_*.yaml"))
	require.NoError(t, globErr)
	assert.Len(t, exports, 1)
}

func TestRootInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootMissingExportDir(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader("8\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--export-dir", filepath.Join(t.TempDir(), "missing")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"catalog.json"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("json"))
	assert.True(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("JSON"))
}
