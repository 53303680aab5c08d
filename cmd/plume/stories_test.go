package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStoriesListShowsEveryStory(t *testing.T) {
	output, err := executeCommand(t, "stories", "list")
	require.NoError(t, err)

	assert.Contains(t, output, "button/")
	assert.Contains(t, output, "modal/")
	assert.Contains(t, output, "toast/lifecycle")
	assert.Contains(t, output, "interactive")
	assert.Contains(t, output, "stories across")
}

func TestStoriesRunAllPass(t *testing.T) {
	output, err := executeCommand(t, "stories", "run", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, output, "0 failed")
	assert.NotContains(t, output, "FAIL")
	assert.Contains(t, output, "theme=light")
	assert.Contains(t, output, "theme=dark")
}

func TestStoriesRunSingleBuiltinTheme(t *testing.T) {
	output, err := executeCommand(t, "stories", "run", "--theme", "dark", "--log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, output, "theme=dark")
	assert.NotContains(t, output, "theme=light")
}

func TestStoriesRunUnknownThemeFails(t *testing.T) {
	t.Setenv("PLUME_HOME", t.TempDir())

	_, err := executeCommand(t, "stories", "run", "--theme", "no-such-theme", "--log-format", "json")
	require.Error(t, err)
}
