package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/archivista/photoyard/internal/config"
	"github.com/archivista/photoyard/internal/exif"
	"github.com/archivista/photoyard/internal/pipeline"
	"github.com/archivista/photoyard/internal/watcher"
	"github.com/archivista/photoyard/version"
)

// NewWatchCmd creates and returns the watch subcommand for the photoyard
// CLI. It runs the watch-folder daemon until interrupted.
func NewWatchCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "watch WATCH_DIR",
		Short: "Watch a folder and tag arriving photos",
		Long: `Watch WATCH_DIR for arriving image files, write the date and identifier
metadata encoded in each valid filename, and move tagged files into the
processed/ subfolder.

Files whose names do not parse or validate are reported and left in place.
The daemon runs until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile, args, verbose)
			if err != nil {
				return err
			}
			return runWatch(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./photoyard.yaml or $HOME/photoyard.yaml)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every tag written")

	return cmd
}

// loadConfig resolves the layered configuration shared by watch and
// process: file/env first, then the positional directory and flags on top.
func loadConfig(cfgFile string, args []string, verbose bool) (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.WatchDir = args[0]
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runWatch(cfg config.Config) error {
	fmt.Printf("photoyard %s starting...\n", version.GetFullVersion())

	tool := exif.NewTool(cfg.Exiftool)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ver, err := tool.Version(ctx)
	if err != nil {
		return err
	}
	log.Printf("exiftool %s detected", ver)

	p := pipeline.New(tool)
	p.ProcessedDir = cfg.ProcessedDir
	p.Verbose = cfg.Verbose

	w, err := watcher.New(cfg.WatchDir, cfg.Patterns, cfg.ProcessedDir, time.Duration(cfg.SettleMS)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		log.Println("Received interrupt signal, shutting down...")
		cancel()
	}()

	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("watcher stopped: %v", err)
			cancel()
		}
	}()

	// Files that arrived before the daemon did are picked up by an
	// initial sweep; the watcher covers everything after.
	stats, err := p.Sweep(ctx, cfg.WatchDir)
	if err != nil {
		return fmt.Errorf("initial sweep: %w", err)
	}
	log.Printf("initial sweep: %s", stats)

	log.Printf("photoyard %s watching %s", version.GetVersion(), cfg.WatchDir)
	for {
		select {
		case <-ctx.Done():
			log.Printf("session total: %s", stats)
			log.Println("Shutdown complete")
			return nil
		case ev := <-w.Events:
			if !p.CanHandle(ev.Path) {
				stats.Skipped++
				continue
			}
			if err := p.Process(ctx, ev.Path); err != nil {
				stats.Failed++
			} else {
				stats.Processed++
			}
		}
	}
}
