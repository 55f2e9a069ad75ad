package cmd

import (
	"strings"
	"testing"
)

func TestRunCheck_ValidName(t *testing.T) {
	var out strings.Builder
	failed := runCheck(&out, []string{"1950.06.15.12.30.00.E.FAM.POR.000001.tiff"}, false)

	if failed != 0 {
		t.Fatalf("failed = %d, want 0; output:\n%s", failed, out.String())
	}
	if !strings.Contains(out.String(), "OK") {
		t.Errorf("missing OK line in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "date=1950-06-15") {
		t.Errorf("missing record summary in output:\n%s", out.String())
	}
}

func TestRunCheck_ReportsEveryViolation(t *testing.T) {
	var out strings.Builder
	failed := runCheck(&out, []string{"1950.13.15.25.00.00.X.FAM.POR.000001.tiff"}, false)

	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	for _, want := range []string{
		"Invalid month value: 13",
		"Invalid hour value: 25",
		"Invalid modifier: 'X'",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunCheck_SyntaxFailureSingleCause(t *testing.T) {
	var out strings.Builder
	failed := runCheck(&out, []string{"photo.jpg"}, false)

	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if got := strings.Count(out.String(), "  - "); got != 1 {
		t.Errorf("syntax failures must report exactly one cause, got %d:\n%s", got, out.String())
	}
}

func TestRunCheck_TagPreview(t *testing.T) {
	var out strings.Builder
	runCheck(&out, []string{"1950.06.00.00.00.00.C.FAM.VAC.000003.jpg"}, true)

	if !strings.Contains(out.String(), "XMP-iptcCore:DateCreated = 1950-06") {
		t.Errorf("missing date tag preview in output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "EXIF:DateTimeOriginal") {
		t.Errorf("circa date must not preview a timestamp tag:\n%s", out.String())
	}
}

func TestRunCheck_CountsAcrossNames(t *testing.T) {
	var out strings.Builder
	failed := runCheck(&out, []string{
		"1950.06.15.12.30.00.E.FAM.POR.000001.tiff",
		"photo.jpg",
		"1950.00.15.00.00.00.C.FAM.POR.000004.tiff",
	}, false)

	if failed != 2 {
		t.Errorf("failed = %d, want 2", failed)
	}
}
