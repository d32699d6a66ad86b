package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = `Transaction Date,Post Date,Description,Category,Type,Amount,Memo
11/01/2021,11/01/2021,GITHUB,Shopping,Sale,-4.00,
11/02/2021,11/02/2021,Payment Thank You-Mobile,,Payment,500.00,
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(statement), 0o644))
	return path
}

func TestRootCmdPrintsReport(t *testing.T) {
	stdout, stderr, err := execute(t, "--color", "never", writeStatement(t))
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "All Transactions ====")
	assert.Contains(t, stdout, "Bills ====")
	assert.NotContains(t, stdout, "Payment Thank You")
}

func TestRootCmdArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"a.csv", "b.yaml", "c"}} {
		stdout, stderr, err := execute(t, args...)
		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Usage:")
	}
}

func TestRootCmdUnknownFlag(t *testing.T) {
	stdout, stderr, err := execute(t, "--bogus", writeStatement(t))
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown flag: --bogus")
	assert.Contains(t, stderr, "Usage:")
}

func TestRootCmdFailures(t *testing.T) {
	stdout, stderr, err := execute(t, "--log-format", "json", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"level":"error"`)
	assert.Contains(t, stderr, "open transactions")

	_, stderr, err = execute(t, "--color", "sometimes", writeStatement(t))
	require.Error(t, err)
	assert.Contains(t, stderr, "report.color")
}

func TestRootCmdSettingsFromEnv(t *testing.T) {
	t.Setenv("TXNREPORT_LOG_LEVEL", "debug")
	t.Setenv("TXNREPORT_LOG_FORMAT", "json")

	stdout, stderr, err := execute(t, "--color", "never", writeStatement(t))
	require.NoError(t, err)
	assert.Contains(t, stdout, "All Transactions")
	assert.Contains(t, stderr, `"message":"transactions sanitized"`)
	assert.Contains(t, stderr, `"dropped":1`)
}
