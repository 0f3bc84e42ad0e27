package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: add_one
description: one movie is saved
steps:
  - submit: {name: "Heat", location: "7"}
    expect: saved
assertions:
  - type: row_count
    count: 1
`

const failingScenario = `name: wrong_count
description: asserts a count that never happens
steps:
  - submit: {name: "Heat", location: "7"}
assertions:
  - type: row_count
    count: 2
`

func writeScenario(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestTestCommand_MissingArgs(t *testing.T) {
	isolateHome(t)

	_, _, err := execute(t, "", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommand_NonExistentDir(t *testing.T) {
	isolateHome(t)

	_, _, err := execute(t, "", "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommand_RepositoryScenarios(t *testing.T) {
	isolateHome(t)

	out, _, err := execute(t, "", "test", filepath.Join("..", "harness", "testdata", "scenarios"))
	require.NoError(t, err, "output: %s", out)
	assert.Contains(t, out, "✓ inception")
	assert.Contains(t, out, "All scenarios passed")
}

func TestTestCommand_Failure(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "add_one.yaml", passingScenario)
	writeScenario(t, dir, "wrong_count.yaml", failingScenario)

	out, _, err := execute(t, "", "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✓ add_one")
	assert.Contains(t, out, "✗ wrong_count")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommand_Filter(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "add_one.yaml", passingScenario)
	writeScenario(t, dir, "wrong_count.yaml", failingScenario)

	out, _, err := execute(t, "", "test", dir, "--filter", "add_*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommand_UpdateThenCompare(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "add_one.yaml", passingScenario)

	out, _, err := execute(t, "", "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "golden updated")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "add_one.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(golden), `"scenario_name": "add_one"`)

	_, _, err = execute(t, "", "test", dir)
	require.NoError(t, err)

	// A stale golden file fails the run.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "add_one.golden"), []byte("{}\n"), 0o644))
	out, _, err = execute(t, "", "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "does not match golden file")
}

func TestTestCommand_JSON(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "wrong_count.yaml", failingScenario)

	out, _, err := execute(t, "", "test", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeTestFailed, resp.Error.Code)
}

func TestTestCommand_EmptyDir(t *testing.T) {
	isolateHome(t)

	out, _, err := execute(t, "", "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommand_BadScenario(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yaml", "name: broken\nstepz: []\n")

	out, _, err := execute(t, "", "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommand_VerboseDiagnostics(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	writeScenario(t, dir, "add_one.yaml", passingScenario)

	out, errOut, err := execute(t, "", "test", dir, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "found 1 scenario(s) in "+dir)
	assert.Contains(t, errOut, "running "+filepath.Join(dir, "add_one.yaml"))
	assert.NotContains(t, out, "running ")
}
