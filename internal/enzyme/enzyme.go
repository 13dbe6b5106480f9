// Package enzyme is for restriction enzyme definitions: parsing them from
// catalog text, storing them in a catalog file and importing them from REBASE.
package enzyme

// Overhang is the kind of single stranded end an enzyme leaves after it cuts.
type Overhang string

const (
	// FivePrime is a staggered cut leaving a 5' overhang
	FivePrime Overhang = "five_prime"

	// ThreePrime is a staggered cut leaving a 3' overhang
	ThreePrime Overhang = "three_prime"

	// Blunt is a cut without an overhang
	Blunt Overhang = "blunt"

	// Unknown is used when the catalog line has no cut information
	Unknown Overhang = "unknown"
)

// Enzyme is a single restriction enzyme definition.
//
// A catalog line with both a 5' and a 3' cut offset is split into two
// Enzymes that share a Name and Recognition but differ in CutOffset.
type Enzyme struct {
	// Name of the enzyme, ex: "EcoRI"
	Name string `json:"name"`

	// Recognition is the, possibly degenerate, recognition sequence
	Recognition string `json:"recognition"`

	// CutOffset is the 0-based offset from the start of Recognition to the cut
	CutOffset int `json:"cutOffset"`

	// Overhang is the kind of end left by the cut. Display only
	Overhang Overhang `json:"overhang"`
}

// classify returns the overhang left by a top strand cut at cut5 and
// a bottom strand cut at cut3, both relative to the start of the site.
func classify(cut5, cut3 int) Overhang {
	switch {
	case cut5 < cut3:
		return FivePrime
	case cut5 > cut3:
		return ThreePrime
	default:
		return Blunt
	}
}

// classifyPalindrome assumes the bottom strand is cut at the mirror
// of the top strand cut, as it is for palindromic sites.
func classifyPalindrome(cut, siteLength int) Overhang {
	return classify(cut, siteLength-cut)
}
