package enzyme

// ambiguity is the set of bases each IUPAC code stands for. The order of
// the bases is the order they are substituted in when a site is expanded.
var ambiguity = map[byte]string{
	'R': "AG",
	'Y': "CT",
	'M': "AC",
	'K': "GT",
	'S': "GC",
	'W': "AT",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
	'N': "ACGT",
}

// IsBase returns whether c is one of the four definite bases.
func IsBase(c byte) bool {
	switch c {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// Bases returns the bases an IUPAC code can stand for. A definite base
// stands for itself. ok is false for characters that aren't IUPAC codes.
func Bases(c byte) (bases string, ok bool) {
	if IsBase(c) {
		return string(c), true
	}
	bases, ok = ambiguity[c]
	return
}

// InvalidBase returns the index of the first character in recog that
// isn't a base or an ambiguity code, or -1 if there is none.
func InvalidBase(recog string) int {
	for i := 0; i < len(recog); i++ {
		if _, ok := Bases(recog[i]); !ok {
			return i
		}
	}
	return -1
}
