// Package pipeline orchestrates the per-file processing flow: decide
// whether a file is a candidate, parse and validate its name, write the
// mapped metadata tags, and move it into the processed folder.
//
// The flow is deliberately fail-closed. A file whose name does not parse or
// validate is reported (with every violation at once) and left exactly
// where it is; a file whose tags cannot be written is never moved. Only a
// fully tagged file ends up under processed/, so the processed folder is
// also the ledger of what succeeded.
package pipeline
