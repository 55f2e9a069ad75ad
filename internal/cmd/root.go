package cmd

import (
	"github.com/spf13/cobra"

	"github.com/archivista/photoyard/version"
)

// NewRootCmd creates and returns the root cobra command for the photoyard
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "photoyard",
		Short: "photoyard - write structured photo filenames into EXIF/XMP metadata",
		Long: `photoyard watches a folder for images named in the structured format

  YYYY.MM.DD.HH.NN.SS.X.GGG.SSS.NNNNNN.ext

parses and validates each name, writes the encoded date and a fresh unique
identifier into the file's EXIF/XMP tags via exiftool, and moves the file
into a processed/ subfolder. Invalid names are reported with every problem
at once and the files are left in place.

Use subcommands to perform different operations:
  - watch: run the watch-folder daemon until interrupted
  - process: sweep a directory once
  - check: parse and validate filenames without touching any files
  - inspect: read the EXIF date back out of a file
  - seed: generate sample image files for testing`,
		Version: version.GetFullVersion(),
	}

	groupProcessing := "processing"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupProcessing,
		Title: "Processing Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	watchCmd := NewWatchCmd()
	processCmd := NewProcessCmd()
	checkCmd := NewCheckCmd()
	inspectCmd := NewInspectCmd()
	seedCmd := NewSeedCmd()

	watchCmd.GroupID = groupProcessing
	processCmd.GroupID = groupProcessing
	checkCmd.GroupID = groupUtilities
	inspectCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
