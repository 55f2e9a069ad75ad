package naming

import (
	"fmt"
	"strconv"
)

// daysInMonth returns the maximum valid day for a month. February is 29
// when the year is unknown (0000 cannot disprove a leap day) or a leap
// year, 28 otherwise.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year == 0 || isLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Validate range-checks a parsed filename and builds the immutable record.
// Every rule is checked independently and every failure is reported: the
// error, when non-nil, is a *ValidationError carrying the complete ordered
// list of violations, so the user can fix a bad name in one pass.
func Validate(pf ParsedFilename) (ValidatedRecord, error) {
	year := atoi(pf.Year)
	month := atoi(pf.Month)
	day := atoi(pf.Day)
	hour := atoi(pf.Hour)
	minute := atoi(pf.Minute)
	second := atoi(pf.Second)

	var violations []Violation
	add := func(field, format string, args ...any) {
		violations = append(violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Month and day ranges, with calendar-aware day checking when both are
	// known. A day with an unknown or out-of-range month can only be held
	// to the generic 31-day bound.
	if month > 12 {
		add("month", "Invalid month value: %d (must be 00-12)", month)
	}
	if month >= 1 && month <= 12 && day > 0 {
		if maxDay := daysInMonth(year, month); day > maxDay {
			add("day", "Invalid day value: %d for month %d (must be 00-%02d)", day, month, maxDay)
		}
	} else if day > 31 {
		add("day", "Invalid day value: %d (must be 00-31)", day)
	}

	// Precision cascade: an unknown coarse field forces every finer field
	// to be unknown too.
	if month == 0 {
		if day != 0 {
			add("day", "Invalid date: month is 00 but day is %02d (when month=00, day must also be 00)", day)
		}
		if hour != 0 || minute != 0 || second != 0 {
			add("time", "Invalid date: month is 00 but time is %02d:%02d:%02d (when month=00, time must be 00:00:00)", hour, minute, second)
		}
	}
	if day == 0 && (hour != 0 || minute != 0 || second != 0) {
		add("time", "Invalid date: day is 00 but time is %02d:%02d:%02d (when day=00, time must be 00:00:00)", hour, minute, second)
	}

	// Time-of-day ranges.
	if hour > 23 {
		add("hour", "Invalid hour value: %d (must be 00-23)", hour)
	}
	if minute > 59 {
		add("minute", "Invalid minute value: %d (must be 00-59)", minute)
	}
	if second > 59 {
		add("second", "Invalid second value: %d (must be 00-59)", second)
	}

	// Same cascade within the time of day.
	if hour == 0 && (minute != 0 || second != 0) {
		add("time", "Invalid time: hour is 00 but minutes/seconds are %02d:%02d (when hour=00, minutes and seconds must also be 00)", minute, second)
	}
	if minute == 0 && second != 0 {
		add("second", "Invalid time: minute is 00 but second is %02d (when minute=00, second must also be 00)", second)
	}

	modifier, okMod := ParseModifier(pf.Modifier)
	if !okMod {
		add("modifier", "Invalid modifier: '%s' (must be one of: A, B, C, E, F)", pf.Modifier)
	}
	extension, okExt := ParseExtension(pf.Extension)
	if !okExt {
		add("extension", "Invalid extension: '%s' (must be one of: jpeg, jpg, tif, tiff)", pf.Extension)
	}

	if len(violations) > 0 {
		return ValidatedRecord{}, &ValidationError{Violations: violations}
	}

	return ValidatedRecord{
		Date:         NewDate(year, month, day),
		Time:         TimeOfDay{Hour: hour, Minute: minute, Second: second},
		Modifier:     modifier,
		Group:        pf.Group,
		Subgroup:     pf.Subgroup,
		Sequence:     pf.Sequence,
		Extension:    extension,
		RawExtension: pf.Extension,
		Suffixes:     pf.Suffixes,
	}, nil
}

// ParseAndValidate runs both stages. The error is a *SyntaxError when the
// name does not match the grammar, a *ValidationError when it does but
// encodes an impossible record; never both.
func ParseAndValidate(filename string) (ValidatedRecord, error) {
	pf, err := Parse(filename)
	if err != nil {
		return ValidatedRecord{}, err
	}
	return Validate(pf)
}

// atoi converts a parser-produced digit string. Parse guarantees the
// fields are pure ASCII digits, so the error path is unreachable.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
