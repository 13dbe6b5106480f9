package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// enzymesCmd is for listing out all the enzymes in the catalog. Useful for if
// the user doesn't know which enzymes are available to digest with
var enzymesCmd = &cobra.Command{
	Use:   "enzymes",
	Short: "List the enzymes in the catalog",
	Long: `Lists out all the enzymes in the catalog by name along with their recognition sequence.

	<Name>	<Recognition sequence> [<BottomStrand>] [(<cut5>/<cut3>)]`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB()
		if err != nil {
			return err
		}
		return listEnzymes(cmd, db.Names(), db.Get)
	},
}

// listEnzymes writes each enzyme's name and the rest of its catalog line
func listEnzymes(cmd *cobra.Command, names []string, get func(string) (string, bool)) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range names {
		line, _ := get(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.TrimSpace(strings.TrimPrefix(line, name)))
	}
	return tw.Flush()
}

// set flags
func init() {
	RootCmd.AddCommand(enzymesCmd)
}
