// Package exif maps validated filename records onto EXIF/XMP metadata
// fields and commits them into image files.
//
// BuildTagSet implements the field mapping contract: every file gets a
// freshly generated identifier duplicated into two identifier fields; files
// with an exact-date modifier additionally get the full EXIF timestamp and
// an ISO-8601 datetime; every file with a known year gets the date-only
// field at the precision the filename states.
//
// Writing goes through an external exiftool process (minimum version 11.00)
// because no Go library writes the XMP namespaces involved. Reading back,
// used by the inspect command and round-trip checks, decodes EXIF natively.
package exif
