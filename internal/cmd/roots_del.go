package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
)

// RootsDelCmd deletes a root
type RootsDelCmd struct {
	Force bool `help:"Force deletion without confirmation" short:"f"`
	ID    uint `arg:"" help:"ID of the root to delete"`
}

// Run executes the del command
func (r *RootsDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing roots del command", "id", r.ID, "force", r.Force)

	ctx := context.Background()
	root, err := cli.Container.CatalogService.GetRoot(ctx, r.ID)
	if err != nil {
		logging.Logger.Error("Root not found", "id", r.ID, "error", err)
		return fmt.Errorf("root not found: %w", err)
	}

	if !r.Force {
		confirmed, err := r.confirmDeletion(root)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled root deletion", "id", r.ID)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.CatalogService.DeleteRoot(ctx, r.ID); err != nil {
		return fmt.Errorf("failed to delete root: %w", err)
	}

	logging.Logger.Info("Root deleted successfully via CLI", "id", r.ID, "name", root.Name)
	fmt.Printf("Root '%s' deleted successfully\n", root.Name)
	return nil
}

func (r *RootsDelCmd) confirmDeletion(root *domain.Root) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete root '%s'?", root.Name)).
		Description("Its test cases are deleted too. Files on disk are left alone.").
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}
