package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/sftpbot/internal/logging"
)

// CasesDelCmd deletes a test case
type CasesDelCmd struct {
	ID uint `arg:"" help:"ID of the test case to delete"`
}

// Run executes the del command
func (c *CasesDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing cases del command", "id", c.ID)

	if err := cli.Container.CatalogService.DeleteTestCase(context.Background(), c.ID); err != nil {
		return fmt.Errorf("failed to delete test case: %w", err)
	}

	fmt.Printf("Test case %d deleted successfully\n", c.ID)
	return nil
}
