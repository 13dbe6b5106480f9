package enzyme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// notationRegex matches "(I1/I2)SEQ(L1/L2)" where either offset group is optional
var notationRegex = regexp.MustCompile(`^(?:\((-?\d+)/(-?\d+)\))?([A-Z]+)(?:\((-?\d+)/(-?\d+)\))?$`)

// notation is a recognition sequence with REBASE style offsets. head are the
// top and bottom strand cuts upstream of the site, tail those downstream.
type notation struct {
	head [2]int
	seq  string
	tail [2]int
}

func parseNotation(input string) (notation, error) {
	m := notationRegex.FindStringSubmatch(strings.ToUpper(input))
	if m == nil {
		return notation{}, fmt.Errorf("%w: expected (I1/I2)SEQUENCE(L1/L2), got %q", ErrMalformedLine, input)
	}

	n := notation{seq: m[3]}
	ints := []*int{&n.head[0], &n.head[1], nil, &n.tail[0], &n.tail[1]}
	for i, dst := range ints {
		if dst == nil || m[i+1] == "" {
			continue
		}
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return notation{}, fmt.Errorf("%w: %q: %v", ErrBadCutField, input, err)
		}
		*dst = v
	}
	return n, nil
}

// strand pads the site with N up to the cut positions and marks them with carets.
func (n notation) strand(head, tail int) string {
	var b strings.Builder
	switch {
	case head > 0:
		b.WriteString("^" + strings.Repeat("N", head))
	case head < 0:
		b.WriteString(strings.Repeat("N", -head) + "^")
	}
	b.WriteString(n.seq)
	switch {
	case tail > 0:
		b.WriteString(strings.Repeat("N", tail) + "^")
	case tail < 0:
		b.WriteString("^" + strings.Repeat("N", -tail))
	}
	return b.String()
}

func (n notation) strands() (top, bottom string) {
	return n.strand(n.head[0], n.tail[0]), n.strand(n.head[1], n.tail[1])
}

// TransformCutNotation rewrites a site with REBASE style cut offsets into
// one caret marked sequence per strand. The top strand uses the first number of
// each offset group and the bottom strand the second:
//
//	ACTGGG(5/4) -> ACTGGGNNNNN^, ACTGGGNNNN^
//	(-3/-5)ACTGGG -> NNN^ACTGGG, NNNNN^ACTGGG
func TransformCutNotation(input string) (top, bottom string, err error) {
	n, err := parseNotation(input)
	if err != nil {
		return "", "", err
	}
	top, bottom = n.strands()
	return top, bottom, nil
}
