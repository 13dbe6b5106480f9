// Package digest finds the sites where restriction enzymes cut a DNA sequence.
//
// Each enzyme's degenerate recognition sequence is expanded into the literal
// sites it can stand for, sites that are reverse complements of one another are
// collapsed, and the target is scanned for every remaining site.
package digest

import (
	"errors"
	"fmt"
	"math"

	"github.com/jjtimmons/resite/internal/enzyme"
)

// DefaultMaxExpansion is the largest number of literal sites a single
// recognition sequence may expand to.
const DefaultMaxExpansion = 4096

var (
	// ErrInvalidBase is returned for a recognition sequence with a character
	// that is neither a base nor an IUPAC ambiguity code
	ErrInvalidBase = errors.New("invalid base")

	// ErrExpansionLimit is returned when a recognition sequence expands to
	// more literal sites than allowed
	ErrExpansionLimit = errors.New("too many literal sites")

	// ErrEmptySite is returned for an empty recognition sequence
	ErrEmptySite = errors.New("empty recognition sequence")
)

// ExpansionSize is the number of literal sites recog expands to: the product
// of the class sizes of its ambiguous positions. It saturates at math.MaxInt.
func ExpansionSize(recog string) (int, error) {
	size := 1
	for i := 0; i < len(recog); i++ {
		bases, ok := enzyme.Bases(recog[i])
		if !ok {
			return 0, fmt.Errorf("%w %q at %d in %s", ErrInvalidBase, recog[i], i, recog)
		}
		if size > math.MaxInt/len(bases) {
			size = math.MaxInt
			continue
		}
		size *= len(bases)
	}
	return size, nil
}

// Expand returns every literal site the recognition sequence stands for. Sites
// are generated left to right, substituting each ambiguous position's bases
// in order. A limit <= 0 turns off the expansion guard.
func Expand(recog string, limit int) ([]string, error) {
	if recog == "" {
		return nil, ErrEmptySite
	}

	size, err := ExpansionSize(recog)
	if err != nil {
		return nil, err
	}
	if limit > 0 && size > limit {
		return nil, fmt.Errorf("%w: %s expands to %d sites, limit is %d", ErrExpansionLimit, recog, size, limit)
	}

	return expand([]byte(recog), 0, make([]string, 0, min(size, DefaultMaxExpansion))), nil
}

// expand resolves site from index i onwards. The literal prefix site[:i] is
// left alone and each base of the first ambiguous position is tried in turn.
func expand(site []byte, i int, sites []string) []string {
	for i < len(site) && enzyme.IsBase(site[i]) {
		i++
	}
	if i == len(site) {
		return append(sites, string(site))
	}

	code := site[i]
	bases, _ := enzyme.Bases(code)
	for j := 0; j < len(bases); j++ {
		site[i] = bases[j]
		sites = expand(site, i+1, sites)
	}
	site[i] = code
	return sites
}
