package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/archivista/photoyard/internal/exif"
	"github.com/archivista/photoyard/naming"
)

// recordingWriter captures tag writes instead of running exiftool.
type recordingWriter struct {
	calls map[string]exif.TagSet
	err   error
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{calls: map[string]exif.TagSet{}}
}

func (w *recordingWriter) WriteTags(_ context.Context, path string, tags exif.TagSet) error {
	if w.err != nil {
		return w.err
	}
	w.calls[path] = tags
	return nil
}

func writeTestFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("image bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPipeline_ProcessValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "1950.06.15.12.30.00.E.FAM.POR.000001.tiff")

	writer := newRecordingWriter()
	p := New(writer)

	if err := p.Process(context.Background(), path); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	tags, ok := writer.calls[path]
	if !ok {
		t.Fatal("no tags written")
	}
	if tags[exif.TagDateTimeOriginal] != "1950:06:15 12:30:00" {
		t.Errorf("DateTimeOriginal = %q", tags[exif.TagDateTimeOriginal])
	}

	// File moved into processed/, source gone.
	dest := filepath.Join(dir, "processed", filepath.Base(path))
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("processed file missing: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("source file should have been moved")
	}
}

func TestPipeline_InvalidNameLeavesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "1950.13.15.00.00.00.E.FAM.POR.000001.tiff")

	writer := newRecordingWriter()
	p := New(writer)

	err := p.Process(context.Background(), path)
	if !errors.Is(err, naming.ErrInvalid) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	if len(writer.calls) != 0 {
		t.Error("tags must not be written for an invalid name")
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Error("invalid file must stay in place")
	}
}

func TestPipeline_WriteFailureBlocksMove(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "1950.06.15.12.30.00.E.FAM.POR.000001.tiff")

	writer := newRecordingWriter()
	writer.err = errors.New("exiftool exploded")
	p := New(writer)

	if err := p.Process(context.Background(), path); err == nil {
		t.Fatal("expected the writer error to propagate")
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Error("file must not move when tagging failed")
	}
}

func TestPipeline_CanHandle(t *testing.T) {
	dir := t.TempDir()
	tiff := writeTestFile(t, dir, "1950.06.15.12.30.00.E.FAM.POR.000001.tiff")
	txt := writeTestFile(t, dir, "notes.txt")

	if err := os.MkdirAll(filepath.Join(dir, "processed"), 0755); err != nil {
		t.Fatal(err)
	}
	done := writeTestFile(t, filepath.Join(dir, "processed"), "1950.06.15.12.30.00.E.FAM.POR.000002.tiff")

	link := filepath.Join(dir, "link.tiff")
	if err := os.Symlink(tiff, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	p := New(newRecordingWriter())
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"supported extension", tiff, true},
		{"unsupported extension", txt, false},
		{"already processed", done, false},
		{"symlink", link, false},
		{"missing file", filepath.Join(dir, "gone.tiff"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CanHandle(tt.path); got != tt.want {
				t.Errorf("CanHandle(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPipeline_Sweep(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "1950.06.15.12.30.00.E.FAM.POR.000001.tiff")
	writeTestFile(t, dir, "1950.06.00.00.00.00.C.FAM.VAC.000003.jpg")
	writeTestFile(t, dir, "1950.13.15.00.00.00.E.FAM.POR.000001.tiff") // invalid month
	writeTestFile(t, dir, "notes.txt")                                 // skipped

	p := New(newRecordingWriter())
	stats, err := p.Sweep(context.Background(), dir)
	if err != nil {
		t.Fatalf("Sweep returned error: %v", err)
	}

	want := Stats{Processed: 2, Skipped: 1, Failed: 1}
	if stats != want {
		t.Errorf("Sweep stats = %+v, want %+v", stats, want)
	}

	// A second sweep finds only the failed file still in place.
	stats, err = p.Sweep(context.Background(), dir)
	if err != nil {
		t.Fatalf("second Sweep returned error: %v", err)
	}
	want = Stats{Processed: 0, Skipped: 1, Failed: 1}
	if stats != want {
		t.Errorf("second Sweep stats = %+v, want %+v", stats, want)
	}
}

func TestMoveToProcessed_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "1950.06.15.12.30.00.E.FAM.POR.000001.tiff")
	if err := os.MkdirAll(filepath.Join(dir, "processed"), 0755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, filepath.Join(dir, "processed"), filepath.Base(path))

	_, err := MoveToProcessed(path, "processed")
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("err = %v, want ErrDestinationExists", err)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Error("source must stay in place on collision")
	}
}
