package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// setCmd is for adding or updating entries in the catalog
var setCmd = &cobra.Command{
	Use:                        "set [enzyme]",
	Short:                      "Set an enzyme",
	SuggestionsMinimumDistance: 1,
	Long: `
Create/update an enzyme with its name and recognition-site.
Set enzymes can be passed to the --enzymes flag of 'resite digest'`,
	Aliases: []string{"add", "update"},
}

// enzymeSetCmd is for adding a new enzyme to the catalog
var enzymeSetCmd = &cobra.Command{
	Use:                        "enzyme [name] [site] [cut]",
	Short:                      "Add an enzyme to the catalog",
	RunE:                       runSetEnzyme,
	Args:                       cobra.RangeArgs(2, 4),
	SuggestionsMinimumDistance: 2,
	Long: `
Set an enzyme in the catalog so it can be used in 'resite digest'.

The site's cut is marked with a caret or a slash. Type IIS enzymes that cut
outside their site take the cut offsets from the start of the site instead.`,
	Aliases: []string{"enzymes"},
	Example: `  resite set enzyme BbvCI CC^TCAGC
  resite set enzyme PaqCI CACCTGC "(11/15)"`,
}

func runSetEnzyme(cmd *cobra.Command, args []string) error {
	db, _, err := openDB()
	if err != nil {
		return err
	}

	name := args[0]
	updated, err := db.Set(name, strings.Join(args[1:], " "))
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}

	if updated {
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s in %s\n", name, db.Path())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", name, db.Path())
	}
	return nil
}

// set flags
func init() {
	setCmd.AddCommand(enzymeSetCmd)

	RootCmd.AddCommand(setCmd)
}
