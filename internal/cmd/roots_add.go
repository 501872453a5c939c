package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/services"
)

// RootsAddCmd adds a new root
type RootsAddCmd struct {
	Error    string `help:"Directory receiving replies that signal failure" required:"" short:"e"`
	Incoming string `help:"Directory watched for new files" required:"" short:"i"`
	Name     string `arg:"" help:"Unique name of the root"`
	Outgoing string `help:"Directory receiving replies that signal success" required:"" short:"o"`
}

// Run executes the add command
func (r *RootsAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing roots add command", "name", r.Name)

	root, err := cli.Container.CatalogService.AddRoot(context.Background(), services.AddRootParams{
		ErrorDir:    r.Error,
		IncomingDir: r.Incoming,
		Name:        r.Name,
		OutgoingDir: r.Outgoing,
	})
	if err != nil {
		return fmt.Errorf("failed to add root: %w", err)
	}

	fmt.Printf("Root '%s' added with id %d\n", root.Name, root.ID)
	return nil
}
