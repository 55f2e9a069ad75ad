package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/archivista/photoyard/internal/exif"
	"github.com/archivista/photoyard/naming"
)

// NewCheckCmd creates and returns the check subcommand for the photoyard
// CLI. It validates filenames without touching any files.
func NewCheckCmd() *cobra.Command {
	var showTags bool

	cmd := &cobra.Command{
		Use:   "check NAME...",
		Short: "Parse and validate structured filenames",
		Long: `Parse and validate one or more filenames against the naming grammar and
its semantic rules, without reading or writing any files.

Every violated rule is reported for each name, so a bad name can be fixed
in a single rename. Exits nonzero when any name is invalid.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if failed := runCheck(os.Stdout, args, showTags); failed > 0 {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVarP(&showTags, "tags", "t", false, "Also print the metadata fields a valid name would produce")

	return cmd
}

func runCheck(w io.Writer, names []string, showTags bool) int {
	var failed int
	for _, name := range names {
		rec, err := naming.ParseAndValidate(name)
		if err != nil {
			failed++
			var ve *naming.ValidationError
			if errors.As(err, &ve) {
				fmt.Fprintf(w, "INVALID %s\n", name)
				for _, msg := range ve.Messages() {
					fmt.Fprintf(w, "  - %s\n", msg)
				}
			} else {
				fmt.Fprintf(w, "INVALID %s\n  - %v\n", name, err)
			}
			continue
		}

		fmt.Fprintf(w, "OK      %s\n", name)
		fmt.Fprintf(w, "  date=%s modifier=%s group=%s subgroup=%s sequence=%s\n",
			orUnknown(rec.DateCreated()), rec.Modifier, rec.Group, rec.Subgroup, rec.Sequence)

		if showTags {
			tags := exif.BuildTagSetWithID(rec, "<generated>")
			for _, tag := range tags.SortedNames() {
				fmt.Fprintf(w, "  %s = %s\n", tag, tags[tag])
			}
		}
	}
	return failed
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
