package digest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jjtimmons/resite/internal/enzyme"
)

const analyzeCatalog = `EcoRI G^AATTC
BglII A/GATCT
AflIII A^CRYGT
HaeIII GG^CC
AatII GACGT/C C/TGCAG (5/1)
BadI GAXTC
HugeI NNNNNNNNNNNN
SmaI CCC^GGG
`

func TestAnalyzer_Analyze(t *testing.T) {
	enzymes, warnings := enzyme.ParseCatalog(analyzeCatalog)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}
	dna := "GGCCGAATTCTAGATCTTACATGTGACGTCGGCCAAGAATTC"

	wantMatches, wantErrs := FindSites(dna, enzymes)

	for _, workers := range []int{0, 1, 2, 8} {
		a := NewAnalyzer(workers)
		gotMatches, gotErrs := a.Analyze(context.Background(), dna, enzymes)
		if !reflect.DeepEqual(gotMatches, wantMatches) {
			t.Errorf("Analyze() workers=%d matches = %+v, want %+v", workers, gotMatches, wantMatches)
		}
		if len(gotErrs) != len(wantErrs) {
			t.Errorf("Analyze() workers=%d errs = %v, want %v", workers, gotErrs, wantErrs)
			continue
		}
		for i := range gotErrs {
			if gotErrs[i].Error() != wantErrs[i].Error() {
				t.Errorf("Analyze() workers=%d err %d = %v, want %v", workers, i, gotErrs[i], wantErrs[i])
			}
		}
	}
}

func TestAnalyzer_Analyze_maxExpansion(t *testing.T) {
	enzymes, _ := enzyme.ParseCatalog("HugeI NNNNNNN\nWideI NNNN")

	a := &Analyzer{MaxExpansion: 256, Workers: 2}
	matches, errs := a.Analyze(context.Background(), "ACGTACGT", enzymes)
	if len(errs) != 1 || !errors.Is(errs[0], ErrExpansionLimit) {
		t.Errorf("Analyze() errs = %v, want one expansion limit error", errs)
	}
	if len(matches) != 1 || matches[0].Name != "WideI" {
		t.Errorf("Analyze() matches = %+v, want only WideI", matches)
	}

	a.MaxExpansion = -1
	if _, errs = a.Analyze(context.Background(), "ACGTACGT", enzymes); len(errs) != 0 {
		t.Errorf("Analyze() without a limit errs = %v", errs)
	}
}

func TestAnalyzer_Analyze_cancelled(t *testing.T) {
	enzymes, _ := enzyme.ParseCatalog(analyzeCatalog)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		a := NewAnalyzer(workers)
		matches, errs := a.Analyze(ctx, "GAATTC", enzymes)
		if len(matches) != 0 {
			t.Errorf("Analyze() workers=%d matches = %v, want none", workers, matches)
		}
		if len(errs) == 0 || !errors.Is(errs[len(errs)-1], context.Canceled) {
			t.Errorf("Analyze() workers=%d errs = %v, want context.Canceled", workers, errs)
		}
	}
}
