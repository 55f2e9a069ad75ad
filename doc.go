// Package main provides the photoyard command-line interface.
//
// photoyard turns structured photo filenames into embedded image metadata.
// Filenames of the form YYYY.MM.DD.HH.NN.SS.X.GGG.SSS.NNNNNN.ext encode a
// possibly-partial date, a certainty modifier, and classification codes;
// photoyard parses and validates each name, writes the date and a fresh
// unique identifier into the file's EXIF/XMP tags, and files the result
// under a processed/ subfolder.
//
// The main binary supports multiple subcommands:
//   - watch: run the watch-folder daemon until interrupted
//   - process: sweep a directory once
//   - check: parse and validate filenames without touching any files
//   - inspect: read the EXIF date back out of a file
//   - seed: generate sample image files for testing
package main
