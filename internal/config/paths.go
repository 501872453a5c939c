package config

import (
	"os"
	"path/filepath"
)

// GetHome returns SFTPBOT_HOME or the ~/.sftpbot default
func GetHome() string {
	home := os.Getenv("SFTPBOT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".sftpbot"
		}
		return filepath.Join(homeDir, ".sftpbot")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SFTPBOT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $SFTPBOT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $SFTPBOT_HOME/ssh where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// GetLockPath returns $SFTPBOT_HOME/session.lock
func GetLockPath() string {
	return filepath.Join(GetHome(), "session.lock")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
