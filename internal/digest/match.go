package digest

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/resite/internal/enzyme"
)

// Match is where one enzyme cuts the target sequence.
type Match struct {
	// Name of the enzyme
	Name string `json:"name"`

	// Sequence is the enzyme's recognition sequence, as it's written in the catalog
	Sequence string `json:"sequence"`

	// SiteLength is the length of the recognition sequence
	SiteLength int `json:"siteLength"`

	// CutOffset is the offset of the cut from the start of the site
	CutOffset int `json:"cutOffset"`

	// Overhang left by the enzyme
	Overhang enzyme.Overhang `json:"overhang"`

	// CutPositions are the offsets in the target where the enzyme cuts, in the
	// order they were found and without duplicates
	CutPositions []int `json:"cutPositions"`

	// Frequency is the number of cut positions
	Frequency int `json:"frequency"`
}

// EnzymeError is an enzyme that was left out of the results.
type EnzymeError struct {
	Name        string
	Recognition string
	Err         error
}

func (e *EnzymeError) Error() string {
	return fmt.Sprintf("enzyme %s (%s): %v", e.Name, e.Recognition, e.Err)
}

func (e *EnzymeError) Unwrap() error { return e.Err }

// FindSites scans dna with each enzyme and returns a Match for each enzyme that
// cuts it, in the order of enzymes. Enzymes that can't be expanded are skipped
// and returned as *EnzymeError.
func FindSites(dna string, enzymes []enzyme.Enzyme) ([]Match, []error) {
	return findSites(dna, enzymes, DefaultMaxExpansion)
}

func findSites(dna string, enzymes []enzyme.Enzyme, limit int) (matches []Match, errs []error) {
	for _, e := range enzymes {
		m, err := Scan(dna, e, limit)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if m.Frequency > 0 {
			matches = append(matches, m)
		}
	}
	return matches, errs
}

// Scan finds every position where a single enzyme cuts dna. The returned
// Match has a Frequency of zero if the enzyme doesn't cut.
//
// Each literal site is searched for in turn, in expansion order, and its
// occurrences (overlapping ones included) are read left to right. A cut is
// recorded the first time its position is seen.
func Scan(dna string, e enzyme.Enzyme, limit int) (Match, error) {
	sites, err := Expand(e.Recognition, limit)
	if err != nil {
		return Match{}, &EnzymeError{Name: e.Name, Recognition: e.Recognition, Err: err}
	}

	m := Match{
		Name:       e.Name,
		Sequence:   e.Recognition,
		SiteLength: len(e.Recognition),
		CutOffset:  e.CutOffset,
		Overhang:   e.Overhang,
	}

	seen := make(map[int]bool)
	for _, site := range Dedup(sites) {
		for _, pos := range occurrences(dna, site) {
			cut := pos + e.CutOffset
			if seen[cut] {
				continue
			}
			seen[cut] = true
			m.CutPositions = append(m.CutPositions, cut)
		}
	}
	m.Frequency = len(m.CutPositions)
	return m, nil
}

// occurrences returns the start of each, possibly overlapping, occurrence of site in dna.
func occurrences(dna, site string) (starts []int) {
	for from := 0; from <= len(dna)-len(site); {
		i := strings.Index(dna[from:], site)
		if i < 0 {
			break
		}
		starts = append(starts, from+i)
		from += i + 1
	}
	return starts
}
