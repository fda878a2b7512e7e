package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLibrary = `
[components.button]
base = "btn"
elevated = "shadow-lg"

[components.button.size]
sm = "text-sm"
lg = "text-lg"
_default = "sm"

[[components.button.compound]]
size = "lg"
elevated = true
classes = "ring-2"

[components.broken]
oops = 42
`

func writeTestLibrary(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	path := filepath.Join(t.TempDir(), "varia.toml")
	require.NoError(t, os.WriteFile(path, []byte(testLibrary), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "resolve", "button", "--config", path,
		"--set", "size=lg", "--on", "elevated")

	require.NoError(t, err)
	assert.Contains(t, out, "btn shadow-lg text-lg ring-2")
	assert.Contains(t, out, "size = lg")
	assert.Contains(t, out, "elevated = true")
}

func TestResolveCmd_Defaults(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "resolve", "button", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "btn text-sm")
	assert.Contains(t, out, "size = sm")
	assert.Contains(t, out, "elevated = false")
}

func TestResolveCmd_Reset(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "resolve", "button", "--config", path, "--reset")

	require.NoError(t, err)
	assert.Contains(t, out, "size = _reset")
	assert.Contains(t, out, "elevated = _reset")
}

func TestResolveCmd_Merge(t *testing.T) {
	path := writeTestLibrary(t)

	// --preserve appends verbatim even though text-sm conflicts with text-lg
	out, err := runCommand(t, "resolve", "button", "--config", path,
		"--set", "size=lg", "--merge", "--preserve", "text-sm")

	require.NoError(t, err)
	assert.Contains(t, out, "btn text-lg text-sm")
}

func TestResolveCmd_UnknownComponent(t *testing.T) {
	path := writeTestLibrary(t)

	_, err := runCommand(t, "resolve", "missing", "--config", path)

	assert.Error(t, err)
}

func TestResolveCmd_BadSetFlag(t *testing.T) {
	path := writeTestLibrary(t)

	_, err := runCommand(t, "resolve", "button", "--config", path, "--set", "nonsense")

	assert.Error(t, err)
}

func TestLintCmd(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "lint", "--config", path)

	// The broken component carries an error-severity finding
	require.Error(t, err)
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "AXIS_INVALID")
	assert.Contains(t, out, "button")
}

func TestLintCmd_Checkstyle(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "lint", "--config", path, "--format", "checkstyle")

	require.Error(t, err)
	assert.Contains(t, out, "<checkstyle")
	assert.Contains(t, out, "varia.AXIS_INVALID")
}

func TestListCmd(t *testing.T) {
	path := writeTestLibrary(t)

	out, err := runCommand(t, "list", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "button")
	assert.Contains(t, out, "size")
	assert.Contains(t, out, "broken")
}

func TestVersionCmd(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "varia")
}

func TestRootCmd_NoArgs(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	_, err := runCommand(t)

	assert.Error(t, err)
}

func TestRootCmd_UsageHeadings(t *testing.T) {
	out, err := runCommand(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "AVAILABLE COMMANDS:")
	assert.Contains(t, out, "FLAGS:")
}

func TestResolveCmd_UsageHeadings(t *testing.T) {
	out, err := runCommand(t, "resolve", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "EXAMPLES:")
	assert.Contains(t, out, "GLOBAL FLAGS:")
}
