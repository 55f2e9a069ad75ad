package naming

import (
	"fmt"
	"strings"
)

// ParsedFilename holds the raw positional fields of a filename after lexical
// parsing. Numeric fields are digit strings of the correct width but have
// not been range-checked; Modifier is upper-cased; Extension keeps the case
// it had in the filename.
type ParsedFilename struct {
	Year   string
	Month  string
	Day    string
	Hour   string
	Minute string
	Second string

	Modifier  string
	Group     string
	Subgroup  string
	Sequence  string
	Extension string

	// Suffixes are the recognized optional trailing tokens, upper-cased,
	// in filename order. They carry no meaning.
	Suffixes []string
}

// Modifier expresses the certainty/direction of a filename's date.
type Modifier byte

const (
	ModifierAbsent Modifier = 'A' // no date is claimed
	ModifierBefore Modifier = 'B' // before the stated date
	ModifierCirca  Modifier = 'C' // approximately the stated date
	ModifierExact  Modifier = 'E' // exactly the stated date
	ModifierAfter  Modifier = 'F' // after the stated date
)

// ParseModifier maps a one-letter token to a Modifier, case-insensitively.
func ParseModifier(s string) (Modifier, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch m := Modifier(s[0] &^ 0x20); m {
	case ModifierAbsent, ModifierBefore, ModifierCirca, ModifierExact, ModifierAfter:
		return m, true
	}
	return 0, false
}

func (m Modifier) String() string { return string(rune(m)) }

// Exact reports whether the date is claimed as exact, which controls the
// downstream timestamp field mapping.
func (m Modifier) Exact() bool { return m == ModifierExact }

// Extension is one of the supported image file extensions.
type Extension int

const (
	ExtTIFF Extension = iota
	ExtTIF
	ExtJPG
	ExtJPEG
)

var extNames = [...]string{"tiff", "tif", "jpg", "jpeg"}

// ParseExtension maps an extension token (without the dot) to an Extension,
// case-insensitively.
func ParseExtension(s string) (Extension, bool) {
	s = strings.ToLower(s)
	for i, n := range extNames {
		if s == n {
			return Extension(i), true
		}
	}
	return 0, false
}

func (e Extension) String() string { return extNames[e] }

// DatePrecision is the granularity to which a record's date is known.
type DatePrecision int

const (
	PrecisionUnknown DatePrecision = iota
	PrecisionYear
	PrecisionYearMonth
	PrecisionFullDate
)

// Date is a possibly-partial calendar date. Fields below the precision
// level are zero. The zero-string filename encoding is reconstructed only
// by the formatters on ValidatedRecord.
type Date struct {
	Precision DatePrecision
	Year      int
	Month     int
	Day       int
}

// NewDate derives the precision level from which fields are nonzero.
// Callers must pass a consistent triple (validated by Validate).
func NewDate(year, month, day int) Date {
	d := Date{Year: year, Month: month, Day: day}
	switch {
	case year == 0:
		d.Precision = PrecisionUnknown
	case month == 0:
		d.Precision = PrecisionYear
	case day == 0:
		d.Precision = PrecisionYearMonth
	default:
		d.Precision = PrecisionFullDate
	}
	return d
}

// TimeOfDay is a time known to the second. An all-zero value means either a
// genuinely stated midnight or "no time"; the distinction does not matter
// downstream, so it is not modeled.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Stated reports whether any time component is nonzero.
func (t TimeOfDay) Stated() bool { return t.Hour != 0 || t.Minute != 0 || t.Second != 0 }

// ValidatedRecord is a fully validated filename record. It is constructed
// only by Validate, is immutable by convention, and guarantees every
// semantic rule holds: fields are in range, the date is calendar-valid, and
// the precision cascade is satisfied.
type ValidatedRecord struct {
	Date     Date
	Time     TimeOfDay
	Modifier Modifier

	Group    string
	Subgroup string
	Sequence string

	Extension Extension
	// RawExtension keeps the filename's original casing for display.
	RawExtension string

	Suffixes []string
}

// ExifTimestamp renders the record as a full EXIF timestamp,
// "YYYY:MM:DD HH:MM:SS". Unknown components appear as literal zeros; the
// caller decides (by modifier) whether this field should be emitted at all.
func (r ValidatedRecord) ExifTimestamp() string {
	return fmt.Sprintf("%04d:%02d:%02d %02d:%02d:%02d",
		r.Date.Year, r.Date.Month, r.Date.Day, r.Time.Hour, r.Time.Minute, r.Time.Second)
}

// DateCreated renders the date-only field at the record's precision:
// "YYYY", "YYYY-MM", or "YYYY-MM-DD". It returns "" when the date is
// entirely unknown.
func (r ValidatedRecord) DateCreated() string {
	switch r.Date.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d", r.Date.Year)
	case PrecisionYearMonth:
		return fmt.Sprintf("%04d-%02d", r.Date.Year, r.Date.Month)
	case PrecisionFullDate:
		return fmt.Sprintf("%04d-%02d-%02d", r.Date.Year, r.Date.Month, r.Date.Day)
	default:
		return ""
	}
}

// ISODateTime renders the ISO-8601 datetime field: the date at its known
// precision, with a "THH:MM:SS" part only when the day is known and a
// nonzero time was stated. It returns "" when the date is entirely unknown.
func (r ValidatedRecord) ISODateTime() string {
	date := r.DateCreated()
	if date == "" {
		return ""
	}
	if r.Date.Precision == PrecisionFullDate && r.Time.Stated() {
		return date + fmt.Sprintf("T%02d:%02d:%02d", r.Time.Hour, r.Time.Minute, r.Time.Second)
	}
	return date
}
