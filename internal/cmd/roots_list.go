package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/sftpbot/internal/domain"
)

// RootsListCmd lists all roots
type RootsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (r *RootsListCmd) Run(cli *CLI) error {
	roots, err := cli.Container.CatalogService.ListRoots(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list roots: %w", err)
	}

	if r.Format == "json" {
		return printJSON(roots)
	}
	return r.printTable(roots)
}

func (r *RootsListCmd) printTable(roots []domain.Root) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINCOMING\tOUTGOING\tERROR\tCREATED")
	for _, root := range roots {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			root.ID,
			root.Name,
			root.IncomingDir,
			root.OutgoingDir,
			root.ErrorDir,
			root.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d roots\n", len(roots))
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
