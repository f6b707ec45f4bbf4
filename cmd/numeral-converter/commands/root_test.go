package commands

import (
	"bytes"
	"testing"

	"numeral-converter/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs root with args and captures its output.
func executeCommand(root *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)
	root.SetOut(stdoutBuf)
	root.SetErr(stderrBuf)
	root.SetArgs(args)

	err = root.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}

type recordingLauncher struct {
	calls []config.Config
}

func (r *recordingLauncher) launch(cfg config.Config) error {
	r.calls = append(r.calls, cfg)
	return nil
}

func TestRootCmd_Help(t *testing.T) {
	rec := &recordingLauncher{}
	stdout, _, err := executeCommand(NewRootCmd(rec.launch), "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--log-level")
	assert.Contains(t, stdout, "--json-logs")
	assert.Contains(t, stdout, "--version")
	assert.Empty(t, rec.calls)
}

func TestRootCmd_Version(t *testing.T) {
	rec := &recordingLauncher{}
	stdout, _, err := executeCommand(NewRootCmd(rec.launch), "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "1.0.0")
	assert.Empty(t, rec.calls)
}

func TestRootCmd_Defaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvJSONLogs, "")

	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch))

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, config.Default(), rec.calls[0])
}

func TestRootCmd_Flags(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvJSONLogs, "")

	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch), "--log-level", "debug", "--json-logs")

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, config.Config{LogLevel: "debug", JSONLogs: true}, rec.calls[0])
}

func TestRootCmd_EnvDefaults(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvJSONLogs, "1")

	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch))

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, config.Config{LogLevel: "warn", JSONLogs: true}, rec.calls[0])
}

func TestRootCmd_FlagOverridesEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvJSONLogs, "true")

	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch), "--log-level", "error", "--json-logs=false")

	require.NoError(t, err)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, config.Config{LogLevel: "error", JSONLogs: false}, rec.calls[0])
}

func TestRootCmd_InvalidEnvLogLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "loud")

	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch))

	assert.ErrorContains(t, err, "loud")
	assert.Empty(t, rec.calls)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch), "--log-level", "loud")

	assert.ErrorContains(t, err, "loud")
	assert.Empty(t, rec.calls)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	rec := &recordingLauncher{}
	_, _, err := executeCommand(NewRootCmd(rec.launch), "255")

	assert.Error(t, err)
	assert.Empty(t, rec.calls)
}
