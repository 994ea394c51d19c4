package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/mdtoc/internal/config"
)

const sampleDoc = "# Sample\n\nA sample document.\n\n## Install\n### From source\n## Usage\n"

const sampleWithTOC = "# Sample\n\nA sample document.\n\n## Table of Contents\n\n" +
	"1. [Install](#install)\n    1. [From source](#from-source)\n2. [Usage](#usage)\n\n" +
	"## Install\n### From source\n## Usage\n"

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath, debug = "", false
	outputPath, toStdout, dryRun = "", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_InPlace(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", sampleDoc)

	out, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted")
	assert.Contains(t, out, "3 entries")
	assert.Equal(t, sampleWithTOC, readFile(t, path))

	out, err = execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
	assert.Equal(t, sampleWithTOC, readFile(t, path))
}

func TestGenerate_OutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "doc.md", sampleDoc)
	output := filepath.Join(dir, "out.md")

	_, err := execute(t, input, "-o", output)
	require.NoError(t, err)

	assert.Equal(t, sampleDoc, readFile(t, input))
	assert.Equal(t, sampleWithTOC, readFile(t, output))
}

func TestGenerate_Stdout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", sampleDoc)

	out, err := execute(t, path, "--stdout")
	require.NoError(t, err)
	assert.Equal(t, sampleWithTOC, out)
	assert.Equal(t, sampleDoc, readFile(t, path))
}

func TestGenerate_DryRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", sampleDoc)

	out, err := execute(t, path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "#from-source")
	assert.Equal(t, sampleDoc, readFile(t, path))
}

func TestGenerate_StdoutAndDryRunConflict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", sampleDoc)

	_, err := execute(t, path, "--stdout", "--dry-run")
	require.Error(t, err)
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)
	cfgPath := writeFile(t, dir, "config.yaml", "header_levels: [2]\ntoc_title: \"## Contents\"\n")

	out, err := execute(t, path, "-c", cfgPath, "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "## Contents\n\n1. [Install](#install)\n2. [Usage](#usage)\n\n")
	assert.NotContains(t, out, "From source](")
}

func TestGenerate_InvalidConfigLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)
	cfgPath := writeFile(t, dir, "config.yaml", "header_levels: []\n")

	_, err := execute(t, path, "-c", cfgPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
	assert.Equal(t, sampleDoc, readFile(t, path))
}

func TestGenerate_UnsupportedNumberingStyle(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", sampleDoc)
	cfgPath := writeFile(t, dir, "config.yaml", "numbering_style: roman\n")

	_, err := execute(t, path, "-c", cfgPath)
	require.Error(t, err)

	var cfgErr *config.Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "numbering_style", cfgErr.Field)
}

func TestGenerate_MissingInput(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestGenerate_FindsReadme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", sampleDoc)
	chdir(t, dir)

	_, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, sampleWithTOC, readFile(t, filepath.Join(dir, "README.md")))
}

func TestGenerate_NoReadme(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no README.md found")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	stale := writeFile(t, dir, "stale.md", sampleDoc)
	current := writeFile(t, dir, "current.md", sampleWithTOC)

	out, err := execute(t, "check", stale)
	require.ErrorIs(t, err, ErrStale)
	assert.Contains(t, out, "missing or stale")
	assert.Equal(t, sampleDoc, readFile(t, stale))

	out, err = execute(t, "check", current)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestCheck_EnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.md", sampleWithTOC)
	t.Setenv(config.EnvHeaderLevels, "2")

	_, err := execute(t, "check", path)
	require.ErrorIs(t, err, ErrStale)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}
