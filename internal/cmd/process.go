package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/archivista/photoyard/internal/exif"
	"github.com/archivista/photoyard/internal/pipeline"
)

// NewProcessCmd creates and returns the process subcommand for the
// photoyard CLI. It sweeps a directory once instead of watching it.
func NewProcessCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "process DIR",
		Short: "Tag and move every candidate file in a directory once",
		Long: `Sweep DIR once: every image file with a valid structured name gets its
metadata written and is moved into the processed/ subfolder. Files with
invalid names are reported, with every violation listed, and left in place.

Exits nonzero when any file failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, args, verbose)
			if err != nil {
				return err
			}

			ctx := context.Background()
			tool := exif.NewTool(cfg.Exiftool)
			if _, err := tool.Version(ctx); err != nil {
				return err
			}

			p := pipeline.New(tool)
			p.ProcessedDir = cfg.ProcessedDir
			p.Verbose = cfg.Verbose

			stats, err := p.Sweep(ctx, cfg.WatchDir)
			if err != nil {
				return err
			}
			log.Printf("sweep complete: %s", stats)

			if stats.Failed > 0 {
				fmt.Fprintf(os.Stderr, "%d file(s) failed; fix the names and run again\n", stats.Failed)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./photoyard.yaml or $HOME/photoyard.yaml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every tag written")

	return cmd
}
