// Package cmd provides the command-line interface implementation for
// photoyard.
//
// It uses the Cobra library for command structure and Fang for styling.
// The package is organized into the following commands:
//   - root: main command coordinator and entry point
//   - watch: run the watch-folder daemon until interrupted
//   - process: one-shot sweep of a directory
//   - check: parse and validate filenames without touching any files
//   - inspect: read the EXIF date back out of a processed file
//   - seed: generate sample image files for manual testing
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Configuration is resolved in
// layers: photoyard.yaml / PHOTOYARD_* environment (via the config
// package), then command flags on top.
package cmd
