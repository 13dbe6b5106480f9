package enzyme

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine is returned for catalog lines that can't be turned into an enzyme
	ErrMalformedLine = errors.New("malformed catalog line")

	// ErrBadCutField is returned for a cut position field that isn't "(<int>/<int>)"
	ErrBadCutField = errors.New("bad cut position field")
)

// cutField is the optional trailing field with 5' and 3' cut offsets, ex: "(5/1)"
var cutField = regexp.MustCompile(`^\((-?\d+)/(-?\d+)\)$`)

// stripCutMarks removes the cut and grouping marks from a sequence field
var stripCutMarks = strings.NewReplacer("/", "", "(", "", ")", "")

// LineError is a catalog line that failed to parse.
type LineError struct {
	// Line is the 1-based line number in the catalog
	Line int

	// Content is the offending line
	Content string

	// Err is the reason it failed
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ParseCatalog parses every line of a catalog. Blank lines and comments are skipped.
// A malformed line doesn't stop the parse, it's returned as a *LineError and
// the next line is parsed.
func ParseCatalog(text string) (enzymes []Enzyme, warnings []error) {
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		parsed, err := ParseLine(line)
		if err != nil {
			warnings = append(warnings, &LineError{Line: i + 1, Content: line, Err: err})
			continue
		}
		enzymes = append(enzymes, parsed...)
	}
	return enzymes, warnings
}

// ParseLine turns one catalog line into one or two enzymes.
//
//	<Name> <Sequence>[^<Sequence>] [<BottomStrand>] [(<cut5>/<cut3>)]
//
// The cut in the sequence field is marked with a caret or a slash. Without a
// caret, a trailing "(cut5/cut3)" field gives offsets from the start of the site
// and yields an enzyme per offset. REBASE style offsets inside the sequence
// field, ex: "GGATG(9/13)", are also accepted.
func ParseLine(line string) ([]Enzyme, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 4 {
		return nil, fmt.Errorf("%w: expected 2 to 4 fields, got %d", ErrMalformedLine, len(fields))
	}

	name := fields[0]
	seq := strings.ToUpper(fields[1])
	cuts, hasCuts, err := parseTrailing(fields[2:])
	if err != nil {
		return nil, err
	}

	switch {
	case strings.Contains(seq, "^"):
		e, err := markedSite(name, seq, "^")
		if err != nil {
			return nil, err
		}
		return []Enzyme{e}, nil
	case hasCuts:
		site := stripCutMarks.Replace(seq)
		if site == "" {
			return nil, fmt.Errorf("%w: empty recognition sequence", ErrMalformedLine)
		}
		overhang := classify(cuts[0], cuts[1])
		if cuts[0] == cuts[1] {
			return []Enzyme{{Name: name, Recognition: site, CutOffset: cuts[0], Overhang: overhang}}, nil
		}
		return []Enzyme{
			{Name: name, Recognition: site, CutOffset: cuts[0], Overhang: overhang},
			{Name: name, Recognition: site, CutOffset: cuts[1], Overhang: overhang},
		}, nil
	case strings.ContainsAny(seq, "()"):
		return inlineSites(name, seq)
	case strings.Contains(seq, "/"):
		e, err := markedSite(name, seq, "/")
		if err != nil {
			return nil, err
		}
		return []Enzyme{e}, nil
	default:
		return []Enzyme{{Name: name, Recognition: seq, Overhang: Unknown}}, nil
	}
}

// parseTrailing checks the fields after the sequence field. At most one of them
// is a cut field, the other (if any) is the bottom strand and is ignored.
func parseTrailing(fields []string) (cuts [2]int, hasCuts bool, err error) {
	others := 0
	for _, f := range fields {
		if !strings.HasPrefix(f, "(") {
			others++
			continue
		}
		if hasCuts {
			return cuts, false, fmt.Errorf("%w: more than one cut field", ErrBadCutField)
		}

		m := cutField.FindStringSubmatch(f)
		if m == nil {
			return cuts, false, fmt.Errorf("%w: %q", ErrBadCutField, f)
		}
		for i := range cuts {
			if cuts[i], err = strconv.Atoi(m[i+1]); err != nil {
				return cuts, false, fmt.Errorf("%w: %q: %v", ErrBadCutField, f, err)
			}
		}
		hasCuts = true
	}
	if others > 1 {
		return cuts, false, fmt.Errorf("%w: unexpected field after bottom strand", ErrMalformedLine)
	}
	return cuts, hasCuts, nil
}

// markedSite splits a sequence on its single cut marker.
func markedSite(name, seq, marker string) (Enzyme, error) {
	if n := strings.Count(seq, marker); n != 1 {
		return Enzyme{}, fmt.Errorf("%w: %d %q cut markers in %s", ErrMalformedLine, n, marker, seq)
	}

	before, after, _ := strings.Cut(seq, marker)
	site := before + after
	if site == "" {
		return Enzyme{}, fmt.Errorf("%w: empty recognition sequence", ErrMalformedLine)
	}

	return Enzyme{
		Name:        name,
		Recognition: site,
		CutOffset:   len(before),
		Overhang:    classifyPalindrome(len(before), len(site)),
	}, nil
}

// inlineSites handles REBASE style offsets inside the sequence field,
// ex: "GGATG(9/13)", by rewriting each strand into an N padded caret site.
func inlineSites(name, seq string) ([]Enzyme, error) {
	n, err := parseNotation(seq)
	if err != nil {
		return nil, err
	}
	top, bottom := n.strands()

	overhang := classify(n.tail[0], n.tail[1])
	if n.tail == [2]int{} {
		// upstream offsets count away from the site, so the strands swap
		overhang = classify(n.head[1], n.head[0])
	}

	var enzymes []Enzyme
	for _, strand := range []string{top, bottom} {
		e := Enzyme{Name: name, Recognition: strand, Overhang: Unknown}
		if strings.Contains(strand, "^") {
			if e, err = markedSite(name, strand, "^"); err != nil {
				return nil, err
			}
			e.Overhang = overhang
		}
		if len(enzymes) == 1 && enzymes[0] == e {
			continue
		}
		enzymes = append(enzymes, e)
	}
	return enzymes, nil
}
