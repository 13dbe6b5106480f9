package enzyme

import "testing"

func Test_rebaseLine(t *testing.T) {
	type args struct {
		name  string
		recog string
	}
	tests := []struct {
		name     string
		args     args
		wantLine string
		wantOK   bool
	}{
		{"caret site", args{"AatII", "GACGT^C"}, "AatII GACGT^C", true},
		{"degenerate caret site", args{"AflIII", "A^CRYGT"}, "AflIII A^CRYGT", true},
		{"downstream offsets", args{"BsaI", "GGTCTC(1/5)"}, "BsaI GGTCTC (7/11)", true},
		{"upstream offsets", args{"BcgX", "(10/12)CGANNNNNNTGC"}, "BcgX CGANNNNNNTGC (-10/-12)", true},
		{"offsets on both sides", args{"BaeI", "(10/15)ACNNNNGTAYC(12/7)"}, "", false},
		{"unknown site", args{"AbaI", "?"}, "", false},
		{"empty site", args{"AbaI", ""}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLine, gotOK := rebaseLine(tt.args.name, tt.args.recog)
			if gotLine != tt.wantLine || gotOK != tt.wantOK {
				t.Errorf("rebaseLine() = (%q, %v), want (%q, %v)", gotLine, gotOK, tt.wantLine, tt.wantOK)
			}
		})
	}
}

// every converted line should parse back into enzymes
func Test_rebaseLine_parses(t *testing.T) {
	for _, recog := range []string{"GACGT^C", "GGTCTC(1/5)", "(10/12)CGANNNNNNTGC", "CCWGG"} {
		line, ok := rebaseLine("Test", recog)
		if !ok {
			t.Fatalf("rebaseLine(%q) failed", recog)
		}
		if _, err := ParseLine(line); err != nil {
			t.Errorf("ParseLine(%q) error = %v", line, err)
		}
	}
}
