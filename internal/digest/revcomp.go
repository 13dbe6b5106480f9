package digest

// complement of each base. Anything else passes through unchanged.
var complement = [256]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// ReverseComplement returns the opposite strand of seq, read 5' to 3'.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if c := complement[b]; c != 0 {
			b = c
		}
		out[i] = b
	}
	return string(out)
}

// canonical is the lesser of a site and its reverse complement. A site and its
// reverse complement are the same physical site, so they share a canonical form.
func canonical(site string) string {
	if rc := ReverseComplement(site); rc < site {
		return rc
	}
	return site
}

// Dedup drops sites that are a duplicate, or the reverse complement, of an
// earlier site. Order is otherwise kept.
func Dedup(sites []string) []string {
	seen := make(map[string]bool, len(sites))
	kept := make([]string, 0, len(sites))
	for _, site := range sites {
		c := canonical(site)
		if seen[c] {
			continue
		}
		seen[c] = true
		kept = append(kept, site)
	}
	return kept
}
