package cmd

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/tiff"
)

// seedSample is one generated test file.
type seedSample struct {
	name  string
	fill  color.RGBA
	valid bool
}

var seedSamples = []seedSample{
	{"1950.06.15.12.30.45.E.FAM.POR.000001.jpg", color.RGBA{R: 173, G: 216, B: 230, A: 255}, true},  // exact date with time
	{"1965.08.00.00.00.00.C.TRV.LND.000002.jpg", color.RGBA{R: 144, G: 238, B: 144, A: 255}, true},  // circa month
	{"2010.03.20.00.00.00.E.FAM.GRP.000003.tiff", color.RGBA{R: 255, G: 255, B: 224, A: 255}, true}, // exact date, no time
	{"1970.00.00.00.00.00.C.FAM.GRP.000004.jpg", color.RGBA{R: 240, G: 128, B: 128, A: 255}, true},  // circa year
	{"0000.00.00.00.00.00.A.UNK.000.000005.tiff", color.RGBA{R: 221, G: 160, B: 221, A: 255}, true}, // fully unknown
	{"1950.06.15.12.00.00.E.FAM.POR.000006.RAW.tiff", color.RGBA{R: 176, G: 196, B: 222, A: 255}, true},
	{"invalid_name.jpg", color.RGBA{R: 211, G: 211, B: 211, A: 255}, false},                        // grammar failure
	{"1950.13.15.00.00.00.E.FAM.POR.000007.tiff", color.RGBA{R: 205, G: 92, B: 92, A: 255}, false}, // month out of range
}

// NewSeedCmd creates and returns the seed subcommand for the photoyard CLI.
// It generates small real image files with exemplary filenames, valid and
// (optionally) invalid, for exercising the daemon by hand.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath  string
		withInvalid bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample image files for testing",
		Long: `Generate small JPEG and TIFF files whose names exercise the naming
grammar: exact dates with and without time, circa month/year, a fully
unknown date, a suffix marker, and (with --invalid) names the daemon must
reject and leave in place.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, withInvalid)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().BoolVar(&withInvalid, "invalid", false, "Also generate files with invalid names")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, withInvalid bool) {
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	var created int
	for _, s := range seedSamples {
		if !s.valid && !withInvalid {
			continue
		}
		path := filepath.Join(outputPath, s.name)
		if err := writeSeedImage(path, s.fill); err != nil {
			log.Fatalf("Failed to create %s: %v", s.name, err)
		}
		fmt.Printf("Created: %s\n", s.name)
		created++
	}

	fmt.Printf("\nDone! Created %d test images in %s\n", created, outputPath)
	fmt.Println("Verify metadata after processing with: exiftool -a -G1 " + filepath.Join(outputPath, "processed", "*"))
}

// writeSeedImage encodes a small solid-color image in the format the
// filename's extension claims, so exiftool can actually tag it.
func writeSeedImage(path string, fill color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
