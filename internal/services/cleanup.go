package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
)

// DirCleanup is the outcome of flushing one directory
type DirCleanup struct {
	Dir     string `json:"dir"`
	Failed  int    `json:"failed"`
	Missing bool   `json:"missing"`
	Removed int    `json:"removed"`
}

// CleanupReport confirms a deletion pass ran over the three root directories
type CleanupReport struct {
	Dirs []DirCleanup `json:"dirs"`
	Root domain.Root  `json:"root"`
}

// Removed returns the total number of files removed
func (r CleanupReport) Removed() int {
	total := 0
	for _, d := range r.Dirs {
		total += d.Removed
	}
	return total
}

// Cleanup deletes every file (not sub-directories) from the root's incoming,
// outgoing and error directories. It does not coordinate with a running
// session: files being dispatched at the same time may disappear.
func (c *LifecycleController) Cleanup(ctx context.Context, rootID uint) (CleanupReport, error) {
	logging.Logger.Info("Cleanup requested", "root_id", rootID)

	root, err := c.rootReader.GetRoot(ctx, rootID)
	if err != nil {
		logging.Logger.Error("Failed to load root for cleanup", "root_id", rootID, "error", err)
		return CleanupReport{}, fmt.Errorf("failed to load root: %w", err)
	}

	report := CleanupReport{Root: *root}
	for _, dir := range root.Dirs() {
		report.Dirs = append(report.Dirs, flushDirectory(dir))
	}

	logging.Logger.Info("Cleanup finished",
		"root", root.Name,
		"removed", report.Removed())
	return report, nil
}

// flushDirectory implements "rm dir/*" without recursion
func flushDirectory(dir string) DirCleanup {
	result := DirCleanup{Dir: dir}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Debug("Cleanup skipped missing directory", "dir", dir)
			result.Missing = true
			return result
		}
		logging.Logger.Error("Failed to read directory for cleanup", "dir", dir, "error", err)
		result.Failed++
		return result
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			logging.Logger.Warn("Failed to remove file", "path", path, "error", err)
			result.Failed++
			continue
		}
		result.Removed++
	}

	logging.Logger.Debug("Directory flushed", "dir", dir, "removed", result.Removed, "failed", result.Failed)
	return result
}
