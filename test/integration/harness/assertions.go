package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (r CommandResult) describe() string {
	return "\nStdout: " + r.Stdout + "\nStderr: " + r.Stderr
}

// AssertSuccess verifies the command exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Equal(tb, 0, result.ExitCode, "expected success, got exit %d%s", result.ExitCode, result.describe())
}

// AssertFailure verifies the command exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, "expected failure, got success%s", result.describe())
}

// AssertExitCode verifies the exact exit code
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "unexpected exit code%s", result.describe())
}

// AssertStdoutContains verifies stdout contains expected
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout mismatch%s", result.describe())
}

// AssertStderrContains verifies stderr contains expected
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr mismatch%s", result.describe())
}

// AssertValidJSON unmarshals stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON%s", result.describe())
}
