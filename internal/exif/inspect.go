package exif

import (
	"fmt"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// InspectDateTime decodes the EXIF block of the file at path and returns
// its DateTimeOriginal (falling back to DateTime, per the EXIF spec's tag
// precedence). Non-critical decode errors are tolerated so partially
// written or vendor-quirky files still report a date when one is present.
func InspectDateTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := goexif.Decode(f)
	if err != nil && goexif.IsCriticalError(err) {
		return time.Time{}, fmt.Errorf("decoding EXIF from %s: %w", path, err)
	}

	tm, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNoDateTime, path)
	}
	return tm, nil
}
