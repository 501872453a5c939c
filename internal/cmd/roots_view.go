package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/sftpbot/internal/domain"
)

// RootsViewCmd views a specific root
type RootsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     uint   `arg:"" help:"ID of the root to view"`
}

type rootView struct {
	Root      *domain.Root
	TestCases []domain.TestCase
}

// Run executes the view command
func (r *RootsViewCmd) Run(cli *CLI) error {
	ctx := context.Background()
	root, err := cli.Container.CatalogService.GetRoot(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("failed to get root: %w", err)
	}
	cases, err := cli.Container.CatalogService.ListTestCases(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("failed to list test cases: %w", err)
	}

	if r.Format == "json" {
		return printJSON(rootView{Root: root, TestCases: cases})
	}

	fmt.Printf("Root: %s\n", root.Name)
	fmt.Printf("ID: %d\n", root.ID)
	fmt.Printf("Incoming: %s\n", root.IncomingDir)
	fmt.Printf("Outgoing: %s\n", root.OutgoingDir)
	fmt.Printf("Error: %s\n", root.ErrorDir)
	fmt.Printf("Created: %s\n", root.CreatedAt.Format("2006-01-02 15:04:05"))

	fmt.Printf("\nTest cases (%d, first match wins):\n", len(cases))
	for _, tc := range cases {
		fmt.Printf("  %d. %s [%s %q] -> %s (%d bytes)\n",
			tc.Position, tc.Name, tc.Kind, tc.Pattern, tc.EffectiveTarget(), len(tc.Content))
	}
	return nil
}
