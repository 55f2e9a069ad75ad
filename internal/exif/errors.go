package exif

import "errors"

// Sentinel errors for package exif.
// These errors can be checked with errors.Is() for specific error handling.
var (
	ErrExiftoolNotFound = errors.New("exiftool not found in PATH")
	ErrExiftoolTooOld   = errors.New("exiftool version is too old (minimum 11.00)")
	ErrNoDateTime       = errors.New("file has no EXIF DateTimeOriginal")
)
