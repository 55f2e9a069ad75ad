package exif

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// minVersion is the oldest exiftool that writes all the XMP namespaces we
// use with the semantics we expect.
const minVersion = 11.0

// Tool runs an external exiftool binary. The version is probed once, on
// first use, and cached for the lifetime of the Tool.
type Tool struct {
	// Path is the exiftool binary; "exiftool" resolves via PATH.
	Path string

	version float64
	probed  bool
}

// NewTool returns a Tool for the given binary path, defaulting to
// "exiftool" when path is empty.
func NewTool(path string) *Tool {
	if path == "" {
		path = "exiftool"
	}
	return &Tool{Path: path}
}

// Version probes `exiftool -ver`, enforces the minimum version, and returns
// the reported version string. The probe result is cached.
func (t *Tool) Version(ctx context.Context) (string, error) {
	if t.probed {
		return strconv.FormatFloat(t.version, 'f', 2, 64), nil
	}

	out, err := exec.CommandContext(ctx, t.Path, "-ver").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExiftoolNotFound, err)
	}
	raw := strings.TrimSpace(string(out))
	ver, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", fmt.Errorf("unexpected exiftool -ver output %q: %w", raw, err)
	}
	if ver < minVersion {
		return "", fmt.Errorf("%w: found %s", ErrExiftoolTooOld, raw)
	}

	t.version = ver
	t.probed = true
	return raw, nil
}

// WriteTags writes the tag set into the file at path. The file is modified
// in place (-overwrite_original) with its filesystem timestamps preserved
// (-P). Stderr is captured and folded into the returned error.
func (t *Tool) WriteTags(ctx context.Context, path string, tags TagSet) error {
	if _, err := t.Version(ctx); err != nil {
		return err
	}

	args := []string{"-P", "-overwrite_original"}
	for _, name := range tags.SortedNames() {
		args = append(args, fmt.Sprintf("-%s=%s", name, tags[name]))
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, t.Path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("exiftool failed on %s: %w: %s", path, err, msg)
		}
		return fmt.Errorf("exiftool failed on %s: %w", path, err)
	}
	return nil
}
