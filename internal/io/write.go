package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jjtimmons/resite/internal/digest"
)

// Formats that Write accepts
const (
	Table = "table"
	JSON  = "json"
	CSV   = "csv"
)

// Output is the JSON document written for a digest
type Output struct {
	// Target is the sequence's ID
	Target string `json:"target"`

	// Length of the target sequence
	Length int `json:"length"`

	// Time is unix seconds
	Time int64 `json:"time"`

	// Matches are the enzymes that cut the target
	Matches []digest.Match `json:"matches"`
}

// Write the matches found in a target to w in the given format.
func Write(w io.Writer, format string, target Target, matches []digest.Match) error {
	switch format {
	case Table, "":
		return writeTable(w, matches)
	case JSON:
		return writeJSON(w, target, matches)
	case CSV:
		return writeCSV(w, matches)
	default:
		return fmt.Errorf("unknown output format %q, expected one of %s, %s, %s", format, Table, JSON, CSV)
	}
}

func writeTable(w io.Writer, matches []digest.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "name\tsequence\tcut\toverhang\tfrequency\tpositions\n")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n", m.Name, m.Sequence, m.CutOffset, m.Overhang, m.Frequency, positions(m.CutPositions, ","))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, target Target, matches []digest.Match) error {
	if matches == nil {
		matches = []digest.Match{}
	}
	out := Output{
		Target:  target.ID,
		Length:  len(target.Seq),
		Time:    time.Now().Unix(),
		Matches: matches,
	}

	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize the output data: %w", err)
	}
	_, err = w.Write(append(output, '\n'))
	return err
}

func writeCSV(w io.Writer, matches []digest.Match) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "sequence", "siteLength", "cutOffset", "overhang", "frequency", "cutPositions"}); err != nil {
		return err
	}
	for _, m := range matches {
		record := []string{
			m.Name,
			m.Sequence,
			strconv.Itoa(m.SiteLength),
			strconv.Itoa(m.CutOffset),
			string(m.Overhang),
			strconv.Itoa(m.Frequency),
			positions(m.CutPositions, " "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func positions(cuts []int, sep string) string {
	s := make([]string, len(cuts))
	for i, c := range cuts {
		s[i] = strconv.Itoa(c)
	}
	return strings.Join(s, sep)
}
