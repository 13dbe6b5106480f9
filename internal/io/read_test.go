package io

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"already clean", "GAATTC", "GAATTC"},
		{"lowercase", "gaattc", "GAATTC"},
		{"wrapped lines", "GAA\nTTC\r\n", "GAATTC"},
		{"numbered blocks", "1 gaattcagat 11 ctt", "GAATTCAGATCTT"},
		{"ambiguous bases are kept", "gan ttc", "GANTTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.seq); got != tt.want {
				t.Errorf("Clean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFASTA(t *testing.T) {
	path := writeFile(t, "targets.fa", `>first
gaattc
AGATCT
>second
GGCC
`)

	targets, err := ReadFASTA(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []Target{
		{ID: "first", Seq: "GAATTCAGATCT"},
		{ID: "second", Seq: "GGCC"},
	}
	if !reflect.DeepEqual(targets, want) {
		t.Errorf("ReadFASTA() = %+v, want %+v", targets, want)
	}
}

func TestReadFASTA_missing(t *testing.T) {
	if _, err := ReadFASTA(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("ReadFASTA() expected an error for a missing file")
	}
}

func TestReadTarget(t *testing.T) {
	fastaPath := writeFile(t, "target.fa", ">pUC19 fragment\nTAGATCTT\n>ignored\nGGCC\n")
	plainPath := writeFile(t, "target.txt", "tagatc\ntt\n")

	tests := []struct {
		name string
		path string
		want Target
	}{
		{"fasta", fastaPath, Target{ID: "pUC19 fragment", Seq: "TAGATCTT"}},
		{"plain sequence", plainPath, Target{ID: plainPath, Seq: "TAGATCTT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTarget(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
