// Package cmd is for command line interactions with the resite application
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/jjtimmons/resite/config"
	"github.com/jjtimmons/resite/internal/enzyme"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// path to a config file that overrides ~/.resite/config.yaml
	cfgFile string

	// path to write a cpu profile to
	cpuProfile string

	// open cpu profile, closed after the command runs
	profile *os.File

	// stderr is for logging warnings to stderr without timestamps
	stderr = log.New(os.Stderr, "", 0)
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "resite",
	Short: "Find where restriction enzymes cut a DNA sequence",
	Long: `Find where restriction enzymes cut a DNA sequence.

Enzymes come from a local catalog with one enzyme per line:

	<Name> <Sequence>[^<Sequence>] [<BottomStrand>] [(<cut5>/<cut3>)]

Recognition sequences may use IUPAC ambiguity codes (R, Y, N, ...).`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profile != nil {
			pprof.StopCPUProfile()
			simpleUtil.DeferClose(profile)
			profile = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		stderr.Fatalln(err)
	}
}

// setup loads the settings and starts the cpu profile.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Setup(cfgFile); err != nil {
		return err
	}

	if cpuProfile != "" {
		profile = osUtil.Create(cpuProfile)
		if err := pprof.StartCPUProfile(profile); err != nil {
			return fmt.Errorf("failed to start the cpu profile: %w", err)
		}
	}
	return nil
}

// openDB opens the enzyme catalog from the settings, seeded with the default
// catalog if there isn't one on disk yet.
func openDB() (*enzyme.DB, *config.Config, error) {
	c, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	db, err := enzyme.NewDB(c.Catalog, config.DefaultCatalog)
	if err != nil {
		return nil, nil, err
	}
	return db, c, nil
}

// warn logs each warning to stderr.
func warn(warnings []error) {
	for _, w := range warnings {
		stderr.Printf("warning: %v", w)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.resite/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "write a cpu profile to this file")
	RootCmd.PersistentFlags().StringP("catalog", "c", "", "enzyme catalog (default is $HOME/.resite/enzymes.txt)")

	must(viper.BindPFlag("catalog", RootCmd.PersistentFlags().Lookup("catalog")))
}

// must panics on flag binding errors, which are programmer errors.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
