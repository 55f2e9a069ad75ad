package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archivista/photoyard/internal/exif"
)

// NewInspectCmd creates and returns the inspect subcommand for the
// photoyard CLI. It reads the EXIF date back out of a file, which is the
// quickest way to confirm a processed file really carries its metadata.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print the EXIF date stored in image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var firstErr error
			for _, path := range args {
				tm, err := exif.InspectDateTime(path)
				if err != nil {
					fmt.Printf("%s: %v\n", path, err)
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				fmt.Printf("%s: %s\n", path, tm.Format("2006-01-02 15:04:05"))
			}
			return firstErr
		},
	}
}
