package digest

import (
	"context"

	"github.com/jjtimmons/resite/internal/enzyme"
	"golang.org/x/sync/errgroup"
)

// Analyzer scans a target with many enzymes, optionally in parallel.
type Analyzer struct {
	// MaxExpansion is the most literal sites an enzyme may expand to.
	// Zero means DefaultMaxExpansion, a negative value turns the guard off
	MaxExpansion int

	// Workers is the number of enzymes scanned at once
	Workers int
}

// NewAnalyzer returns an Analyzer with the default expansion guard.
func NewAnalyzer(workers int) *Analyzer {
	return &Analyzer{MaxExpansion: DefaultMaxExpansion, Workers: workers}
}

func (a *Analyzer) limit() int {
	if a.MaxExpansion == 0 {
		return DefaultMaxExpansion
	}
	return a.MaxExpansion
}

// Analyze is FindSites with the Analyzer's settings. Enzymes are scanned on up
// to Workers goroutines but the results are in the same order FindSites would
// return them. Once ctx is done no more enzymes are started and ctx.Err() is
// added to the returned errors.
func (a *Analyzer) Analyze(ctx context.Context, dna string, enzymes []enzyme.Enzyme) ([]Match, []error) {
	if a.Workers <= 1 {
		return a.analyze(ctx, dna, enzymes)
	}

	matches := make([]Match, len(enzymes))
	errs := make([]error, len(enzymes))

	var g errgroup.Group
	g.SetLimit(a.Workers)
	for i, e := range enzymes {
		if ctx.Err() != nil {
			break
		}
		i, e := i, e
		g.Go(func() error {
			matches[i], errs[i] = Scan(dna, e, a.limit())
			return nil
		})
	}
	_ = g.Wait()

	var found []Match
	var failed []error
	for i := range enzymes {
		if errs[i] != nil {
			failed = append(failed, errs[i])
		} else if matches[i].Frequency > 0 {
			found = append(found, matches[i])
		}
	}
	if err := ctx.Err(); err != nil {
		failed = append(failed, err)
	}
	return found, failed
}

func (a *Analyzer) analyze(ctx context.Context, dna string, enzymes []enzyme.Enzyme) ([]Match, []error) {
	var found []Match
	var failed []error
	for _, e := range enzymes {
		if err := ctx.Err(); err != nil {
			return found, append(failed, err)
		}
		m, err := Scan(dna, e, a.limit())
		if err != nil {
			failed = append(failed, err)
		} else if m.Frequency > 0 {
			found = append(found, m)
		}
	}
	return found, failed
}
