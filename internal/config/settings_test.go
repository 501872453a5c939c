package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SFTPBOT_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.True(t, settings.ShouldCreateDirectories())
	assert.True(t, settings.ShouldLockSession())
	assert.Equal(t, DefaultMonitorHistory, settings.GetMonitorHistory())
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SFTPBOT_HOME", home)

	createDirs := false
	history := 5
	require.NoError(t, SaveSettings(&Settings{
		CreateDirectories: &createDirs,
		MonitorHistory:    &history,
		ServerPort:        "2222",
	}))
	assert.FileExists(t, filepath.Join(home, "settings.json"))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, settings.ShouldCreateDirectories())
	assert.Equal(t, 5, settings.GetMonitorHistory())
	assert.Equal(t, "2222", settings.ServerPort)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SFTPBOT_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestNilSettingsDefaults(t *testing.T) {
	var s *Settings

	assert.True(t, s.ShouldCreateDirectories())
	assert.True(t, s.ShouldLockSession())
	assert.Equal(t, DefaultMonitorHistory, s.GetMonitorHistory())
	assert.NotEmpty(t, s.GetAuthorizedKeysPath())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{
		"authorized_keys_path", "create_directories", "debug", "max_log_files",
		"monitor_history", "server_host", "server_port", "session_lock",
	} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, DefaultServerPort, example["server_port"])
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "drops"), ExpandPath("~/drops"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestSettingsSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, s *Settings)
		wantErr string
	}{
		{
			name:  "bool",
			key:   "create_directories",
			value: "false",
			check: func(t *testing.T, s *Settings) { assert.False(t, s.ShouldCreateDirectories()) },
		},
		{
			name:  "int",
			key:   "monitor_history",
			value: "7",
			check: func(t *testing.T, s *Settings) { assert.Equal(t, 7, s.GetMonitorHistory()) },
		},
		{
			name:  "string",
			key:   "server_port",
			value: "2022",
			check: func(t *testing.T, s *Settings) { assert.Equal(t, "2022", s.ServerPort) },
		},
		{name: "bad bool", key: "session_lock", value: "maybe", wantErr: "expects a boolean"},
		{name: "bad int", key: "max_log_files", value: "lots", wantErr: "expects an integer"},
		{name: "unknown key", key: "colour", value: "blue", wantErr: "unknown setting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{}

			err := s.Set(tt.key, tt.value)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestSettingsSet_PersistsThroughSave(t *testing.T) {
	t.Setenv("SFTPBOT_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NoError(t, settings.Set("session_lock", "false"))
	require.NoError(t, SaveSettings(settings))

	reloaded, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, reloaded.ShouldLockSession())
	assert.True(t, reloaded.ShouldCreateDirectories())
}
