package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jjtimmons/resite/internal/digest"
	seqio "github.com/jjtimmons/resite/internal/io"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// digestCmd is for finding the cut sites of enzymes in a target sequence
var digestCmd = &cobra.Command{
	Use:                        "digest [sequence]",
	Short:                      "Find where enzymes cut a sequence",
	RunE:                       runDigest,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Find where enzymes cut a sequence.

The target is either passed as an argument or read from a FASTA or plain text
file with --in. Every enzyme in the catalog is tried unless --enzymes is set.
Each enzyme that cuts is written with its cut positions, 0-based offsets into
the target where the top strand is cut.`,
	Example: `  resite digest TAGATCTTGAATTC
  resite digest --in pUC19.fa --enzymes EcoRI,BglII,HaeIII --format json --out cuts.json
  resite digest --in pUC19.fa --workers 4 --plot cuts.png`,
	Aliases: []string{"cut", "sites"},
}

func runDigest(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	in, _ := flags.GetString("in")
	out, _ := flags.GetString("out")
	names, _ := flags.GetString("enzymes")
	plot, _ := flags.GetString("plot")

	target, err := readTarget(in, args)
	if err != nil {
		return err
	}

	db, c, err := openDB()
	if err != nil {
		return err
	}

	enzymes, warnings := db.Enzymes()
	if names != "" {
		enzymes, warnings = db.Select(splitNames(names))
	}
	warn(warnings)
	if len(enzymes) == 0 {
		return fmt.Errorf("no enzymes to digest with, see 'resite enzymes'")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	analyzer := &digest.Analyzer{MaxExpansion: c.MaxExpansion, Workers: c.Workers}
	matches, errs := analyzer.Analyze(ctx, target.Seq, enzymes)
	for _, err := range errs {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
	}
	warn(errs)

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create the output file: %w", err)
		}
		defer simpleUtil.DeferClose(f)
		w = f
	}
	if err := seqio.Write(w, c.Format, target, matches); err != nil {
		return err
	}

	if plot != "" {
		return seqio.Plot(plot, target, matches)
	}
	return nil
}

// readTarget reads the target from the --in file or the sequence argument.
func readTarget(in string, args []string) (seqio.Target, error) {
	switch {
	case in != "" && len(args) > 0:
		return seqio.Target{}, fmt.Errorf("pass a sequence or --in, not both")
	case in != "":
		return seqio.ReadTarget(in)
	case len(args) == 1:
		return seqio.Target{ID: "sequence", Seq: seqio.Clean(args[0])}, nil
	default:
		return seqio.Target{}, fmt.Errorf("no target sequence, pass one as an argument or with --in")
	}
}

// splitNames splits a comma separated list of enzyme names.
func splitNames(list string) (names []string) {
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// set flags
func init() {
	flags := digestCmd.Flags()
	flags.StringP("in", "i", "", "FASTA or plain text file with the target sequence")
	flags.StringP("out", "o", "", "output file (default is stdout)")
	flags.StringP("enzymes", "e", "", "comma separated list of enzymes (default is all of the catalog)")
	flags.StringP("format", "f", "table", "output format: table, json or csv")
	flags.StringP("plot", "p", "", "save a bar chart of cuts per enzyme (png, svg or pdf)")
	flags.Int("max-expansion", digest.DefaultMaxExpansion, "most literal sites an enzyme may expand to, negative for no limit")
	flags.IntP("workers", "w", 1, "number of enzymes to scan in parallel")

	must(viper.BindPFlag("format", flags.Lookup("format")))
	must(viper.BindPFlag("max-expansion", flags.Lookup("max-expansion")))
	must(viper.BindPFlag("workers", flags.Lookup("workers")))

	RootCmd.AddCommand(digestCmd)
}
