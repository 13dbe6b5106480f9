package digest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jjtimmons/resite/internal/enzyme"
)

func TestScan(t *testing.T) {
	type args struct {
		dna string
		e   enzyme.Enzyme
	}
	tests := []struct {
		name    string
		args    args
		wantCut []int
	}{
		{
			"single BglII site",
			args{
				"TAGATCTT",
				enzyme.Enzyme{Name: "BglII", Recognition: "AGATCT", CutOffset: 1},
			},
			[]int{2},
		},
		{
			"overlapping occurrences",
			args{
				"AAAA",
				enzyme.Enzyme{Name: "Test", Recognition: "AA", CutOffset: 0},
			},
			[]int{0, 1, 2},
		},
		{
			"overlapping occurrences with a cut offset",
			args{
				"AAAA",
				enzyme.Enzyme{Name: "Test", Recognition: "AA", CutOffset: 1},
			},
			[]int{1, 2, 3},
		},
		{
			"literal sites in expansion order, then left to right",
			args{
				"ACGCGTTTACACGTTTACATGT",
				enzyme.Enzyme{Name: "AflIII", Recognition: "ACRYGT", CutOffset: 1},
			},
			[]int{9, 17, 1},
		},
		{
			"site longer than the sequence",
			args{
				"GAATT",
				enzyme.Enzyme{Name: "EcoRI", Recognition: "GAATTC", CutOffset: 1},
			},
			nil,
		},
		{
			"bases outside ACGT never match",
			args{
				"GANTTCgaattc",
				enzyme.Enzyme{Name: "EcoRI", Recognition: "GAATTC", CutOffset: 1},
			},
			nil,
		},
		{
			"negative cut offsets are kept",
			args{
				"TTTTGAATTC",
				enzyme.Enzyme{Name: "Test", Recognition: "GAATTC", CutOffset: -3},
			},
			[]int{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.args.dna, tt.args.e, DefaultMaxExpansion)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got.CutPositions, tt.wantCut) {
				t.Errorf("Scan() cuts = %v, want %v", got.CutPositions, tt.wantCut)
			}
			if got.Frequency != len(tt.wantCut) {
				t.Errorf("Scan() frequency = %d, want %d", got.Frequency, len(tt.wantCut))
			}
			if got.SiteLength != len(tt.args.e.Recognition) || got.Sequence != tt.args.e.Recognition {
				t.Errorf("Scan() site = %s (%d)", got.Sequence, got.SiteLength)
			}
		})
	}
}

func TestFindSites(t *testing.T) {
	catalog := `BglII A/GATCT
EcoRI G^AATTC
AflIII A^CRYGT
BadI GAXTC
HugeI NNNNNNNNNNNN
`
	enzymes, warnings := enzyme.ParseCatalog(catalog)
	if len(warnings) != 0 {
		t.Fatal(warnings)
	}

	dna := "TAGATCTTACATGTCC"
	got, errs := FindSites(dna, enzymes)

	want := []Match{
		{Name: "BglII", Sequence: "AGATCT", SiteLength: 6, CutOffset: 1, Overhang: enzyme.FivePrime, CutPositions: []int{2}, Frequency: 1},
		{Name: "AflIII", Sequence: "ACRYGT", SiteLength: 6, CutOffset: 1, Overhang: enzyme.FivePrime, CutPositions: []int{9}, Frequency: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindSites() = %+v, want %+v", got, want)
	}

	if len(errs) != 2 {
		t.Fatalf("FindSites() errs = %v, want 2", errs)
	}
	var enzErr *EnzymeError
	if !errors.As(errs[0], &enzErr) || enzErr.Name != "BadI" || !errors.Is(errs[0], ErrInvalidBase) {
		t.Errorf("FindSites() first error = %v", errs[0])
	}
	if !errors.Is(errs[1], ErrExpansionLimit) {
		t.Errorf("FindSites() second error = %v", errs[1])
	}
}

func TestFindSites_dualCuts(t *testing.T) {
	enzymes, _ := enzyme.ParseCatalog("AatII GACGT/C C/TGCAG (5/1)")
	got, errs := FindSites("CTGCAGGACGTCATCC", enzymes)
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if len(got) != 2 {
		t.Fatalf("FindSites() = %+v, want two AatII matches", got)
	}
	if got[0].CutPositions[0] != 11 || got[1].CutPositions[0] != 7 {
		t.Errorf("FindSites() cuts = %v, %v", got[0].CutPositions, got[1].CutPositions)
	}
}

func TestFindSites_empty(t *testing.T) {
	enzymes, _ := enzyme.ParseCatalog("EcoRI G^AATTC\nBglII A/GATCT")

	if got, errs := FindSites("", enzymes); len(got) != 0 || len(errs) != 0 {
		t.Errorf("FindSites(\"\") = %v, %v", got, errs)
	}
	if got, errs := FindSites("GAATTCAGATCT", nil); len(got) != 0 || len(errs) != 0 {
		t.Errorf("FindSites(nil) = %v, %v", got, errs)
	}
}

func TestFindSites_idempotent(t *testing.T) {
	enzymes, _ := enzyme.ParseCatalog("AflIII A^CRYGT\nEcoRI G^AATTC\nHaeIII GG^CC")
	dna := "GGCCACGCGTGAATTCACATGTGGCC"

	first, _ := FindSites(dna, enzymes)
	second, _ := FindSites(dna, enzymes)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FindSites() isn't idempotent: %v != %v", first, second)
	}
}
