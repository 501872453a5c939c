package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/sftpbot/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "create_directories")
				harness.AssertStdoutContains(t, result, "server_port")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsSet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "set", "monitor_history", "5")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set monitor_history")

	data, err := os.ReadFile(filepath.Join(env.SftpbotHome, "settings.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"monitor_history": 5}`, string(data))

	result = harness.RunCommand(t, env, "settings", "set", "server_host", "0.0.0.0")
	harness.AssertSuccess(t, result)

	data, err = os.ReadFile(filepath.Join(env.SftpbotHome, "settings.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"monitor_history": 5, "server_host": "0.0.0.0"}`, string(data))
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "set", "debug", "sometimes")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "expects a boolean")
	assert.NoFileExists(t, filepath.Join(env.SftpbotHome, "settings.json"))
}
