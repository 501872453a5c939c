package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/logging"
)

const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Cases    CasesCmd    `cmd:"cases" help:"Manage test cases of a root (list, add, del)"`
	Cleanup  CleanupCmd  `cmd:"cleanup" help:"Delete all files from a root's incoming, outgoing and error directories"`
	Roots    RootsCmd    `cmd:"roots" help:"Manage roots (list, view, add, del)"`
	Run      RunCmd      `cmd:"run" help:"Watch a root and answer incoming files until interrupted"`
	Serve    ServeCmd    `cmd:"serve" help:"Start the SSH control server"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, set)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SFTPBOT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SFTPBOT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The gorm logger reads SFTPBOT_DEBUG, so export it before the container opens the database
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SFTPBOT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SFTPBOT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("SFTPBOT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Created after logging so the storage layer logs through the real handler
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
