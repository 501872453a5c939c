package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultServerHost is the default SSH control server bind address
	DefaultServerHost = "localhost"
	// DefaultServerPort is the default SSH control server port
	DefaultServerPort = "23234"
	// DefaultMonitorHistory is how many dispatch results the monitor keeps on screen
	DefaultMonitorHistory = 20
)

// Settings represents the structure of $SFTPBOT_HOME/settings.json
type Settings struct {
	AuthorizedKeysPath string `json:"authorized_keys_path,omitempty"`
	CreateDirectories  *bool  `json:"create_directories,omitempty"`
	Debug              *bool  `json:"debug,omitempty"`
	MaxLogFiles        *int   `json:"max_log_files,omitempty"`
	MonitorHistory     *int   `json:"monitor_history,omitempty"`
	ServerHost         string `json:"server_host,omitempty"`
	ServerPort         string `json:"server_port,omitempty"`
	SessionLock        *bool  `json:"session_lock,omitempty"`
}

// ShouldCreateDirectories defaults to true
func (s *Settings) ShouldCreateDirectories() bool {
	return s == nil || s.CreateDirectories == nil || *s.CreateDirectories
}

// ShouldLockSession defaults to true
func (s *Settings) ShouldLockSession() bool {
	return s == nil || s.SessionLock == nil || *s.SessionLock
}

// GetMonitorHistory returns the configured history length or the default
func (s *Settings) GetMonitorHistory() int {
	if s == nil || s.MonitorHistory == nil || *s.MonitorHistory <= 0 {
		return DefaultMonitorHistory
	}
	return *s.MonitorHistory
}

// GetAuthorizedKeysPath returns the configured path or ~/.ssh/authorized_keys
func (s *Settings) GetAuthorizedKeysPath() string {
	if s != nil && s.AuthorizedKeysPath != "" {
		return s.AuthorizedKeysPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".ssh", "authorized_keys")
	}
	return filepath.Join(homeDir, ".ssh", "authorized_keys")
}

// LoadSettings loads settings from $SFTPBOT_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.AuthorizedKeysPath != "" {
		settings.AuthorizedKeysPath = ExpandPath(settings.AuthorizedKeysPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $SFTPBOT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
