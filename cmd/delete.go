package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd is for removing entries from the catalog
var deleteCmd = &cobra.Command{
	Use:                        "delete [enzyme]",
	Short:                      "Delete an enzyme",
	SuggestionsMinimumDistance: 2,
	Long:                       `Delete an enzyme by name.`,
	Aliases:                    []string{"rm", "remove"},
}

// enzymeDeleteCmd is for deleting enzymes from the catalog
var enzymeDeleteCmd = &cobra.Command{
	Use:                        "enzyme [name]",
	Short:                      "Delete an enzyme from the catalog",
	RunE:                       runDeleteEnzyme,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"remove"},
	Example:                    "  resite delete enzyme BsaI",
	Long: `Delete an enzyme from the catalog by its name.
If no such enzyme name exists in the catalog, an error is logged to stderr.`,
}

func runDeleteEnzyme(cmd *cobra.Command, args []string) error {
	db, _, err := openDB()
	if err != nil {
		return err
	}

	deleted, err := db.Delete(args[0])
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", args[0], err)
	}
	if !deleted {
		return fmt.Errorf("failed to find %s in %s", args[0], db.Path())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s from %s\n", args[0], db.Path())
	return nil
}

// set flags
func init() {
	deleteCmd.AddCommand(enzymeDeleteCmd)

	RootCmd.AddCommand(deleteCmd)
}
