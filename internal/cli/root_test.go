package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SLIMTRACK_BACKEND", "SLIMTRACK_DB_PATH", "SLIMTRACK_CONFIG", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "slimtrack")
	for _, sub := range []string{"init", "add", "list", "delete", "suggest", "chart", "serve"} {
		assert.Contains(t, out, sub)
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "slimtrack.db")
	for i := 0; i < 2; i++ {
		out, err := run(t, "--db", path, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, "0 records")
	}
}

func TestRecordLifecycle(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "slimtrack.db")

	out, err := run(t, "--db", path, "add", "--weight", "72", "--height", "1.75", "--notes", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Added record 1: BMI 23.51 (Normal)")

	out, err = run(t, "--db", path, "add", "--weight", "70.5", "--height", "1.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Added record 2")

	out, err = run(t, "--db", path, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\tstart"))

	out, err = run(t, "--db", path, "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "BMI Category: Normal")
	assert.Contains(t, out, "Great progress! You've lost 1.5 kg")

	out, err = run(t, "--db", path, "chart", "weight")
	require.NoError(t, err)
	assert.Contains(t, out, "Weight Over Time (kg)")
	assert.Contains(t, out, "72.00 "+strings.Repeat("#", barWidth))

	out, err = run(t, "--db", path, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted record 1")

	_, err = run(t, "--db", path, "delete", "1")
	assert.ErrorContains(t, err, "record 1 not found")

	out, err = run(t, "--db", path, "add", "--weight", "71", "--height", "1.75")
	require.NoError(t, err)
	assert.Contains(t, out, "Added record 3", "ids must not be reused")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "slimtrack.db")

	_, err := run(t, "--db", path, "add", "--weight", "301", "--height", "1.75")
	assert.ErrorContains(t, err, "please enter valid weight (0-300 kg) and height (0-3 m)")

	out, err := run(t, "--db", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No records yet.")
}

func TestRulesFileOverridesBounds(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	rules := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("bounds:\n  max_weight_kg: 100\n"), 0o600))

	_, err := run(t, "--db", filepath.Join(dir, "slimtrack.db"), "--config", rules, "add", "--weight", "120", "--height", "1.8")
	assert.ErrorContains(t, err, "0-100 kg")
}

func TestEmptyViews(t *testing.T) {
	isolateEnv(t)

	out, err := run(t, "--backend", "memory", "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "No data available. Please enter your health data first.")

	out, err = run(t, "--backend", "memory", "chart", "distribution")
	require.NoError(t, err)
	assert.Contains(t, out, "No data to display")

	_, err = run(t, "--backend", "memory", "chart", "pie")
	assert.Error(t, err)
}

func TestInvalidBackend(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, "--backend", "sheets", "list")
	assert.ErrorContains(t, err, "invalid backend")
}

func TestDeleteRejectsBadID(t *testing.T) {
	_, err := run(t, "delete", "abc")
	assert.ErrorContains(t, err, `invalid record id "abc"`)
}
