package naming

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_ValidFilename(t *testing.T) {
	pf, err := Parse("1950.06.15.12.30.45.E.FAM.POR.000001.tiff")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := ParsedFilename{
		Year: "1950", Month: "06", Day: "15",
		Hour: "12", Minute: "30", Second: "45",
		Modifier: "E", Group: "FAM", Subgroup: "POR",
		Sequence: "000001", Extension: "tiff",
	}
	if !reflect.DeepEqual(pf, want) {
		t.Errorf("Parse = %+v, want %+v", pf, want)
	}
}

func TestParse_NoRangeChecking(t *testing.T) {
	// Month 13 and day 32 are syntactically fine; rejecting them is the
	// validator's job.
	pf, err := Parse("1950.13.32.25.61.61.E.FAM.POR.000001.tiff")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if pf.Month != "13" || pf.Day != "32" {
		t.Errorf("Parse rewrote fields: month=%s day=%s", pf.Month, pf.Day)
	}
}

func TestParse_ModifierCaseFolded(t *testing.T) {
	pf, err := Parse("1950.06.15.12.00.00.e.FAM.POR.000001.tiff")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if pf.Modifier != "E" {
		t.Errorf("Modifier = %q, want %q", pf.Modifier, "E")
	}
}

func TestParse_ExtensionCasePreserved(t *testing.T) {
	pf, err := Parse("1950.06.15.12.00.00.E.FAM.POR.000001.TIFF")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if pf.Extension != "TIFF" {
		t.Errorf("Extension = %q, want original case %q", pf.Extension, "TIFF")
	}
}

func TestParse_Suffixes(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantSuf  []string
		wantExt  string
	}{
		{
			name:     "single suffix before extension",
			filename: "1950.06.15.12.00.00.E.FAM.POR.000001.A.tiff",
			wantSuf:  []string{"A"},
			wantExt:  "tiff",
		},
		{
			name:     "raw suffix before extension",
			filename: "1950.06.15.12.00.00.E.FAM.POR.000001.RAW.jpg",
			wantSuf:  []string{"RAW"},
			wantExt:  "jpg",
		},
		{
			name:     "multiple suffixes",
			filename: "1950.06.15.12.00.00.E.FAM.POR.000001.A.RAW.WEB.tiff",
			wantSuf:  []string{"A", "RAW", "WEB"},
			wantExt:  "tiff",
		},
		{
			name:     "suffix after extension",
			filename: "1950.06.15.12.00.00.E.FAM.POR.000001.tiff.RAW",
			wantSuf:  []string{"RAW"},
			wantExt:  "tiff",
		},
		{
			name:     "lowercase suffix is folded",
			filename: "1950.06.15.12.00.00.E.FAM.POR.000001.msr.tiff",
			wantSuf:  []string{"MSR"},
			wantExt:  "tiff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf, err := Parse(tt.filename)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if !reflect.DeepEqual(pf.Suffixes, tt.wantSuf) {
				t.Errorf("Suffixes = %v, want %v", pf.Suffixes, tt.wantSuf)
			}
			if pf.Extension != tt.wantExt {
				t.Errorf("Extension = %q, want %q", pf.Extension, tt.wantExt)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantField string
	}{
		{"plain photo name", "photo.jpg", "filename"},
		{"empty", "", "filename"},
		{"path not base name", "watch/1950.06.15.12.00.00.E.FAM.POR.000001.tiff", "filename"},
		{"too few fields", "1950.06.15.tiff", "filename"},
		{"two digit year", "50.06.15.12.00.00.E.FAM.POR.000001.tiff", "year"},
		{"non-numeric month", "1950.XX.15.12.00.00.E.FAM.POR.000001.tiff", "month"},
		{"one digit day", "1950.06.5.12.00.00.E.FAM.POR.000001.tiff", "day"},
		{"three digit hour", "1950.06.15.012.00.00.E.FAM.POR.000001.tiff", "hour"},
		{"two letter modifier", "1950.06.15.12.00.00.EX.FAM.POR.000001.tiff", "modifier"},
		{"numeric modifier", "1950.06.15.12.00.00.1.FAM.POR.000001.tiff", "modifier"},
		{"long group", "1950.06.15.12.00.00.E.FAMILY.POR.000001.tiff", "group"},
		{"short subgroup", "1950.06.15.12.00.00.E.FAM.PO.000001.tiff", "subgroup"},
		{"non-numeric sequence", "1950.06.15.12.00.00.E.FAM.POR.00000A.tiff", "sequence"},
		{"short sequence", "1950.06.15.12.00.00.E.FAM.POR.0001.tiff", "sequence"},
		{"unrecognized suffix", "1950.06.15.12.00.00.E.FAM.POR.000001.BAK.tiff", "suffix"},
		{"two extension candidates", "1950.06.15.12.00.00.E.FAM.POR.000001.tiff.jpg", "suffix"},
		{"non-alphabetic extension", "1950.06.15.12.00.00.E.FAM.POR.000001.t1ff", "extension"},
		{"suffixes but no extension", "1950.06.15.12.00.00.E.FAM.POR.000001.RAW", "extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.filename)
			if err == nil {
				t.Fatal("Parse accepted a malformed filename")
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error is %T, want *SyntaxError", err)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Error("SyntaxError should wrap ErrSyntax")
			}
			if se.Field != tt.wantField {
				t.Errorf("Field = %q, want %q (message: %s)", se.Field, tt.wantField, se)
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	const name = "0000.00.00.00.00.00.A.UNK.000.000005.tiff"
	first, err1 := Parse(name)
	second, err2 := Parse(name)
	if err1 != nil || err2 != nil {
		t.Fatalf("Parse returned errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not deterministic: %+v vs %+v", first, second)
	}
}
