package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifyflow/notifyflow/internal/console"
)

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommandEmail(t *testing.T) {
	stdout, _, err := execute(t, "1\nServer down\n")
	require.NoError(t, err)
	assert.Equal(t, "Choose notification method:\n1. Email\n2. SMS\n"+
		"Enter notification message:\n"+
		"Sending email notification: Server down\n"+
		"Event logged: Server down\n"+
		"Audit log entry: Server down\n", stdout)
}

func TestRootCommandInvalidChoiceSucceeds(t *testing.T) {
	stdout, stderr, err := execute(t, "5\n")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "2. SMS\nInvalid choice. Exiting...\n"))
	assert.Empty(t, stderr)
}

func TestRootCommandMalformedChoiceFails(t *testing.T) {
	stdout, stderr, err := execute(t, "email\n")
	require.ErrorIs(t, err, console.ErrMalformedChoice)
	assert.NotContains(t, stdout, "Invalid choice")
	assert.Contains(t, stderr, "session failed")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "1\nx\n", "extra")
	assert.Error(t, err)
}

func TestRootCommandLogsToStderrOnly(t *testing.T) {
	stdout, stderr, err := execute(t, "2\nLow battery\n", "--log-level", "debug")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "notification_id")
	assert.Contains(t, stderr, "notification_id")
	assert.Contains(t, stderr, `"channel":"sms"`)
}

func TestRootCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notifyflow.yaml")
	logFile := filepath.Join(dir, "notifyflow.log")
	data := "log_level: info\nmetrics_summary: true\nlog_file: " + logFile + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, stderr, err := execute(t, "1\nhi\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "session metrics")

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "session metrics")
}

func TestLoadConfigPrecedence(t *testing.T) {
	t.Setenv("NOTIFYFLOW_LOG_LEVEL", "info")
	cfg, err := loadConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg, err = loadConfig("", "error")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	_, err = loadConfig("", "loud")
	assert.Error(t, err)
}
