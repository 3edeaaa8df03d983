package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showcase/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := execute(t, "", "calc", "7", "/", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: 3.5")

	_, err = execute(t, "", "calc", "1", "divide", "0")
	require.Error(t, err)
	assert.Equal(t, "Cannot divide by zero!", errors.UserMessage(err))

	_, err = execute(t, "", "calc", "1", "%", "2")
	assert.Error(t, err)

	_, err = execute(t, "", "calc", "1e20000000", "+", "1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestTextCommand(t *testing.T) {
	out, err := execute(t, "", "text", "good", "good", "day")
	require.NoError(t, err)
	assert.Contains(t, out, "Word Count: 3")
	assert.Contains(t, out, "good")

	out, err = execute(t, "what a wonderful wonderful day\n", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Word Count: 5")

	out, err = execute(t, "   ", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No text to analyze.")
}

func TestDescribeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,score\nann,1\nbob,\ncid,3\n"), 0o644))

	out, err := execute(t, "", "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Data Preview")
	assert.Contains(t, out, "2.000000")
	assert.Contains(t, out, "Missing Values")

	_, err = execute(t, "", "describe", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestChartCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.svg")

	out, err := execute(t, "", "chart", "--style", "Bar", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Interactive Bar Chart")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	_, err = execute(t, "", "chart", "--out", filepath.Join(t.TempDir(), "walk.gif"))
	assert.Error(t, err)
}
