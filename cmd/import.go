package cmd

import (
	"fmt"

	"github.com/jjtimmons/resite/internal/enzyme"
	"github.com/spf13/cobra"
)

// importCmd is for loading enzymes from outside sources into the catalog
var importCmd = &cobra.Command{
	Use:                        "import [rebase]",
	Short:                      "Import enzymes into the catalog",
	SuggestionsMinimumDistance: 2,
	Long:                       `Import enzymes from other databases into the catalog.`,
}

// rebaseImportCmd is for importing a REBASE withrefm file
var rebaseImportCmd = &cobra.Command{
	Use:                        "rebase [file]",
	Short:                      "Import enzymes from a REBASE withrefm file",
	RunE:                       runImportRebase,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  resite import rebase withrefm.407",
	Long: `Import enzymes from a REBASE data file in withrefm format.
Enzymes in the file replace those with the same name in the catalog.

Enzymes without a known recognition sequence, and enzymes that cut on
both sides of their site, are skipped.`,
}

func runImportRebase(cmd *cobra.Command, args []string) error {
	lines, err := enzyme.ImportRebase(args[0])
	if err != nil {
		return err
	}

	db, _, err := openDB()
	if err != nil {
		return err
	}

	added, warnings := db.Import(lines)
	warn(warnings)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d enzymes to %s\n", added, db.Path())
	return nil
}

// set flags
func init() {
	importCmd.AddCommand(rebaseImportCmd)

	RootCmd.AddCommand(importCmd)
}
