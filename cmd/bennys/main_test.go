package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennysutils/bennys-utils/pkg/prompt"
)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bennys.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMoneyCmd(t *testing.T) {
	out, _, err := run(t, "", "money", "--", "1000", "-2500")
	require.NoError(t, err)
	assert.Equal(t, "$1,000.00\n-$2,500.00\n", out)
}

func TestMoneyCmd_ShortformCurrency(t *testing.T) {
	out, _, err := run(t, "", "money", "--currency", "EUR", "--short", "5000000", "999")
	require.NoError(t, err)
	assert.Equal(t, "€5.00M\n€999.00\n", out)
}

func TestMoneyCmd_Debug(t *testing.T) {
	out, _, err := run(t, "", "money", "--debug", "1000")
	require.NoError(t, err)
	assert.Equal(t, "Money(1000, $)\n", out)

	out, _, err = run(t, "", "money", "--debug", "-s", "-c", "EUR", "1000")
	require.NoError(t, err)
	assert.Equal(t, "Money(1000, €, shortform=True)\n", out)
}

func TestMoneyCmd_ConfigDefaults(t *testing.T) {
	path := writeConfig(t, "money:\n  currency: GBP\n  shortform: true\noutput:\n  format: csv\n")

	out, _, err := run(t, "", "--config", path, "money", "2500")
	require.NoError(t, err)
	assert.Contains(t, out, "2500,2500,GBP,£,true,£2.50K")

	// flags override the file
	out, _, err = run(t, "", "--config", path, "money", "--short=false", "-o", "console", "2500")
	require.NoError(t, err)
	assert.Equal(t, "£2,500.00\n", out)
}

func TestMoneyCmd_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, _, err := run(t, "", "money", "-o", "json", "--out-file", path, "12")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"display": "$12.00"`)
}

func TestMoneyCmd_Errors(t *testing.T) {
	_, _, err := run(t, "", "money", "twelve")
	assert.ErrorContains(t, err, "invalid amount")

	_, _, err = run(t, "", "money", "-o", "pdf", "12")
	assert.ErrorContains(t, err, "unsupported output format")

	_, _, err = run(t, "", "money")
	assert.Error(t, err)
}

func TestAskCmd(t *testing.T) {
	out, errOut, err := run(t, "WRONG\nNo\n", "--log-level", "none", "ask", "Yes or no? ", "-O", "yes", "-O", "no")
	require.NoError(t, err)
	assert.Equal(t, "No\n", out)
	assert.Equal(t, 2, strings.Count(errOut, "Yes or no? "))
	assert.Contains(t, errOut, "Invalid input! Please enter one of: yes, no")
}

func TestAskCmd_AnyInput(t *testing.T) {
	out, _, err := run(t, "  hello world  \n", "ask", "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestAskCmd_NoValue(t *testing.T) {
	out, _, err := run(t, "a\nb\n", "ask", "? ", "-O", "yes", "-n", "2")
	assert.ErrorIs(t, err, errNoValue)
	assert.Empty(t, out)
	assert.Equal(t, 2, exitCode(err))
}

func TestAskCmd_Fail(t *testing.T) {
	_, _, err := run(t, "a\nb\n", "ask", "? ", "-O", "yes", "-n", "2", "--fail")
	assert.ErrorIs(t, err, prompt.ErrInvalidInputExhausted)
}

func TestAskCmd_ConfigDefaults(t *testing.T) {
	path := writeConfig(t, "prompt:\n  case_sensitive: true\n  max_attempts: 1\n  fail_on_exhaust: true\n")
	_, _, err := run(t, "YES\n", "--config", path, "ask", "? ", "-O", "yes")
	assert.ErrorIs(t, err, prompt.ErrInvalidInputExhausted)
}

func TestAskCmd_DebugLogging(t *testing.T) {
	_, errOut, err := run(t, "maybe\nyes\n", "--log-level", "debug", "ask", "? ", "-O", "yes")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=debug")
	assert.Contains(t, errOut, `rejected input \"maybe\" (attempt 1)`)
}

func TestSymbolsCmd(t *testing.T) {
	out, _, err := run(t, "", "symbols")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, []string{"AUD", "A$"}, strings.Fields(lines[0]))
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "symbols")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errNoValue))
}
