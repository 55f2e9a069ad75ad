// Package naming parses and validates structured photo filenames.
//
// Filenames carry a full date/provenance record in dot-delimited fields:
//
//	YYYY.MM.DD.HH.NN.SS.X.GGG.SSS.NNNNNN.ext
//
// where X is a single-letter date modifier (Absent, Before, Circa, Exact,
// aFter), GGG/SSS are three-character group and subgroup codes, NNNNNN is a
// six-digit sequence number, and ext is one of tiff, tif, jpg, jpeg. Zero
// values in the date fields mean "unknown at this granularity": 0000 for the
// year, 00 for month, day, hour, minute, and second. Optional side/version
// suffix tokens (A, R, RAW, MSR, WEB, PRT) may trail the sequence number and
// are recognized but carry no meaning.
//
// The package is split into two pure stages:
//
// Parsing (Parse) is purely lexical. It checks token count, field widths,
// and character classes, and returns a ParsedFilename of raw field strings.
// It never range-checks values: a month of "13" parses fine. Structural
// problems produce a single *SyntaxError naming the offending field.
//
// Validation (Validate) is purely semantic. It range-checks every field,
// enforces calendar validity (including leap years when the year is known),
// enforces the precision cascade (an unknown month forces an unknown day, an
// unknown day forces a zero time, and so on down to seconds), and checks the
// modifier and extension against their closed sets. Unlike the parser it
// never stops early: every violated rule is collected into one
// *ValidationError so a bad filename can be fixed in a single rename.
//
// Both stages are deterministic, allocate only their results, and perform no
// I/O, so they are safe to call concurrently from any number of goroutines.
package naming
