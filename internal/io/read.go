// Package io reads target sequences and writes digest results.
package io

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bebop/poly/io/fasta"
)

// Target is a sequence to digest.
type Target struct {
	// ID is the FASTA header, or the file name for plain sequence files
	ID string `json:"id"`

	// Seq is the cleaned, upper case sequence
	Seq string `json:"seq"`
}

// unwantedChars are stripped from every target sequence
var unwantedChars = regexp.MustCompile(`[\s\d]`)

// Clean upper cases a sequence and strips whitespace and digits, so
// GenBank style numbered blocks and wrapped lines can be pasted in.
func Clean(seq string) string {
	return strings.ToUpper(unwantedChars.ReplaceAllString(seq, ""))
}

// ReadFASTA reads every record of a FASTA file.
func ReadFASTA(path string) ([]Target, error) {
	records, err := fasta.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read FASTA file %s: %w", path, err)
	}

	var targets []Target
	for _, r := range records {
		targets = append(targets, Target{ID: r.Name, Seq: Clean(r.Sequence)})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no sequences in FASTA file %s", path)
	}
	return targets, nil
}

// ReadTarget reads the first sequence in a file. Files starting with ">" are
// read as FASTA, anything else as a bare sequence.
func ReadTarget(path string) (Target, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return Target{}, fmt.Errorf("failed to read target file %s: %w", path, err)
	}

	if strings.HasPrefix(strings.TrimSpace(string(dat)), ">") {
		targets, err := ReadFASTA(path)
		if err != nil {
			return Target{}, err
		}
		return targets[0], nil
	}

	return Target{ID: path, Seq: Clean(string(dat))}, nil
}
