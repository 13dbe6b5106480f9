package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// findCmd is for finding enzymes by their name.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find enzymes",
	SuggestionsMinimumDistance: 2,
	Long: `Find enzymes by name.
If there is no exact match, similar entries are returned`,
	Aliases: []string{"ls", "list"},
}

// enzymeFindCmd is for listing out the enzymes with a name like the one requested.
var enzymeFindCmd = &cobra.Command{
	Use:                        "enzyme [name]",
	Short:                      "Find enzymes in the catalog",
	RunE:                       runFindEnzyme,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  resite find enzyme BsaI",
	Long: `List out all the enzymes with the same or a similar name as the argument.

'resite find enzyme' without any arguments logs all enzymes available.`,
	Aliases: []string{"enzymes"},
}

func runFindEnzyme(cmd *cobra.Command, args []string) error {
	db, _, err := openDB()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return listEnzymes(cmd, db.Names(), db.Get)
	}

	entries := db.Find(args[0])
	if len(entries) == 0 {
		return fmt.Errorf("failed to find any enzymes for %s", args[0])
	}

	lines := make(map[string]string, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		lines[e.Name] = e.Line
	}
	return listEnzymes(cmd, names, func(name string) (string, bool) {
		line, ok := lines[name]
		return line, ok
	})
}

// set flags
func init() {
	findCmd.AddCommand(enzymeFindCmd)

	RootCmd.AddCommand(findCmd)
}
