package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/sftpbot/internal/domain"
)

// CasesListCmd lists the test cases of a root
type CasesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	RootID uint   `arg:"" help:"ID of the root"`
}

// Run executes the list command
func (c *CasesListCmd) Run(cli *CLI) error {
	cases, err := cli.Container.CatalogService.ListTestCases(context.Background(), c.RootID)
	if err != nil {
		return fmt.Errorf("failed to list test cases: %w", err)
	}

	if c.Format == "json" {
		return printJSON(cases)
	}
	return c.printTable(cases)
}

func (c *CasesListCmd) printTable(cases []domain.TestCase) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOS\tNAME\tKIND\tPATTERN\tTARGET\tOUTPUT\tBYTES")
	for _, tc := range cases {
		output := tc.OutputName
		if output == "" {
			output = "<arrived name>"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			tc.ID,
			tc.Position,
			tc.Name,
			tc.Kind,
			tc.Pattern,
			tc.EffectiveTarget(),
			output,
			len(tc.Content))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d test cases\n", len(cases))
	return nil
}
