package enzyme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bebop/poly/io/rebase"
)

// ImportRebase reads a REBASE data file (withrefm format) and returns its
// enzymes as catalog lines, sorted by name. Enzymes whose recognition
// sequence is unknown, or that cut on both sides of their site, are skipped.
func ImportRebase(path string) ([]string, error) {
	enzymes, err := rebase.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read REBASE file %s: %w", path, err)
	}

	var lines []string
	for name, e := range enzymes {
		if line, ok := rebaseLine(name, e.RecognitionSequence); ok {
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)
	return lines, nil
}

// rebaseLine converts a REBASE recognition sequence to a catalog line.
//
//	GACGT^C          -> AatII GACGT^C
//	GGTCTC(1/5)      -> BsaI GGTCTC (7/11)
//	(8/13)GACNNNNNNGTC -> name GACNNNNNNGTC (-8/-13)
//
// REBASE offsets are counted from the end (or back from the start) of the
// site, catalog offsets from its start.
func rebaseLine(name, recog string) (string, bool) {
	name = strings.TrimSpace(name)
	recog = strings.ToUpper(strings.TrimSpace(recog))
	if name == "" || recog == "" || strings.Contains(recog, "?") {
		return "", false
	}

	if !strings.ContainsAny(recog, "()") {
		return name + " " + recog, true
	}

	n, err := parseNotation(recog)
	if err != nil {
		return "", false
	}

	var cut5, cut3 int
	switch {
	case n.head != [2]int{} && n.tail != [2]int{}:
		return "", false
	case n.tail != [2]int{}:
		cut5, cut3 = len(n.seq)+n.tail[0], len(n.seq)+n.tail[1]
	default:
		cut5, cut3 = -n.head[0], -n.head[1]
	}
	return fmt.Sprintf("%s %s (%d/%d)", name, n.seq, cut5, cut3), true
}
