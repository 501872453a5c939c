package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/sftpbot/internal/logging"
)

// CleanupCmd empties the three directories of a root
type CleanupCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	RootID uint   `arg:"" help:"ID of the root"`
}

// Run executes the cleanup command
func (c *CleanupCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing cleanup command", "root_id", c.RootID)

	report, err := cli.Container.Lifecycle.Cleanup(context.Background(), c.RootID)
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	if c.Format == "json" {
		return printJSON(report)
	}

	fmt.Printf("Cleaned root '%s'\n", report.Root.Name)
	for _, d := range report.Dirs {
		switch {
		case d.Missing:
			fmt.Printf("  %s: missing\n", d.Dir)
		case d.Failed > 0:
			fmt.Printf("  %s: %d removed, %d failed\n", d.Dir, d.Removed, d.Failed)
		default:
			fmt.Printf("  %s: %d removed\n", d.Dir, d.Removed)
		}
	}
	return nil
}
