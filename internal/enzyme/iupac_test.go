package enzyme

import "testing"

func TestBases(t *testing.T) {
	tests := []struct {
		code   byte
		want   string
		wantOK bool
	}{
		{'A', "A", true},
		{'T', "T", true},
		{'R', "AG", true},
		{'S', "GC", true},
		{'B', "CGT", true},
		{'N', "ACGT", true},
		{'X', "", false},
		{'a', "", false},
		{'^', "", false},
	}
	for _, tt := range tests {
		got, ok := Bases(tt.code)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Bases(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestInvalidBase(t *testing.T) {
	if i := InvalidBase("ACRYGTN"); i != -1 {
		t.Errorf("InvalidBase() = %d, want -1", i)
	}
	if i := InvalidBase("ACXGT"); i != 2 {
		t.Errorf("InvalidBase() = %d, want 2", i)
	}
}
