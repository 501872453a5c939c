package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
)

// CasesAddCmd appends a test case to a root
type CasesAddCmd struct {
	Content     string `help:"Reply content written when the case matches" xor:"content"`
	ContentFile string `help:"Read reply content from a file" type:"existingfile" xor:"content"`
	Kind        string `help:"How the pattern is compared to the file name" enum:"exact,glob,regex" default:"exact"`
	Name        string `arg:"" help:"Name of the test case"`
	OutputName  string `help:"Reply file name (defaults to the arrived file name)"`
	Pattern     string `help:"File name pattern" required:"" short:"p"`
	RootID      uint   `arg:"" help:"ID of the root"`
	Target      string `help:"Directory the reply is written to" enum:"error,outgoing" default:"error"`
}

// Run executes the add command
func (c *CasesAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing cases add command", "root_id", c.RootID, "name", c.Name)

	content := []byte(c.Content)
	if c.ContentFile != "" {
		data, err := os.ReadFile(config.ExpandPath(c.ContentFile))
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content = data
	}

	tc, err := cli.Container.CatalogService.AddTestCase(context.Background(), domain.TestCase{
		Content:    content,
		Kind:       domain.MatchKind(c.Kind),
		Name:       c.Name,
		OutputName: c.OutputName,
		Pattern:    c.Pattern,
		RootID:     c.RootID,
		Target:     domain.Target(c.Target),
	})
	if err != nil {
		return fmt.Errorf("failed to add test case: %w", err)
	}

	fmt.Printf("Test case '%s' added with id %d at position %d\n", tc.Name, tc.ID, tc.Position)
	return nil
}
