package naming

import (
	"strconv"
	"strings"
)

// Token counts and widths for the naming grammar. The first ten
// dot-delimited fields are mandatory; everything after them is the
// extension plus optional suffix markers.
const (
	mandatoryFields = 10

	yearWidth     = 4
	timePartWidth = 2
	groupWidth    = 3
	sequenceWidth = 6
)

// suffixTokens is the closed set of recognized optional trailing tokens
// (side/version markers). They are matched case-insensitively and carry no
// meaning. The set is disjoint from the extension set, so a trailing token
// is never ambiguous.
var suffixTokens = map[string]bool{
	"A":   true,
	"R":   true,
	"RAW": true,
	"MSR": true,
	"WEB": true,
	"PRT": true,
}

// Parse lexically decomposes a base filename (no directory part) into its
// positional fields. It checks shape only: token count, field widths, and
// character classes. Range checking is Validate's job, so Parse happily
// returns month "13".
//
// The error, when non-nil, is always a *SyntaxError naming the first field
// that failed. Parse is a pure function: the same input always yields the
// same output.
func Parse(filename string) (ParsedFilename, error) {
	var pf ParsedFilename

	if filename == "" {
		return pf, &SyntaxError{Field: "filename", Token: filename, Reason: "empty"}
	}
	if strings.ContainsAny(filename, `/\`) {
		return pf, &SyntaxError{Field: "filename", Token: filename, Reason: "must be a base name without directory components"}
	}

	tokens := strings.Split(filename, ".")
	if len(tokens) < mandatoryFields+1 {
		return pf, &SyntaxError{
			Field:  "filename",
			Token:  filename,
			Reason: "expected 10 dot-delimited fields plus an extension",
		}
	}

	fields := []struct {
		name  string
		dst   *string
		check func(tok string) string // returns "" when ok, else the reason
	}{
		{"year", &pf.Year, digitsOf(yearWidth)},
		{"month", &pf.Month, digitsOf(timePartWidth)},
		{"day", &pf.Day, digitsOf(timePartWidth)},
		{"hour", &pf.Hour, digitsOf(timePartWidth)},
		{"minute", &pf.Minute, digitsOf(timePartWidth)},
		{"second", &pf.Second, digitsOf(timePartWidth)},
		{"modifier", &pf.Modifier, checkModifierToken},
		{"group", &pf.Group, alnumOf(groupWidth)},
		{"subgroup", &pf.Subgroup, alnumOf(groupWidth)},
		{"sequence", &pf.Sequence, digitsOf(sequenceWidth)},
	}
	for i, f := range fields {
		tok := tokens[i]
		if reason := f.check(tok); reason != "" {
			return ParsedFilename{}, &SyntaxError{Field: f.name, Token: tok, Reason: reason}
		}
		*f.dst = tok
	}
	// Case of the modifier is irrelevant downstream; normalize here.
	pf.Modifier = strings.ToUpper(pf.Modifier)

	// Remaining tokens are the extension plus optional suffix markers.
	// Suffixes are accepted on either side of the extension: the grammar
	// writes them after it, the classic layout puts them before it.
	for _, tok := range tokens[mandatoryFields:] {
		if suffixTokens[strings.ToUpper(tok)] {
			pf.Suffixes = append(pf.Suffixes, strings.ToUpper(tok))
			continue
		}
		if pf.Extension != "" {
			return ParsedFilename{}, &SyntaxError{Field: "suffix", Token: tok, Reason: "unrecognized suffix token"}
		}
		if !isAlpha(tok) {
			return ParsedFilename{}, &SyntaxError{Field: "extension", Token: tok, Reason: "must be alphabetic"}
		}
		pf.Extension = tok
	}
	if pf.Extension == "" {
		return ParsedFilename{}, &SyntaxError{Field: "extension", Token: filename, Reason: "missing extension"}
	}

	return pf, nil
}

func digitsOf(width int) func(string) string {
	reason := "must be exactly " + strconv.Itoa(width) + " digits"
	return func(tok string) string {
		if len(tok) != width || !isDigits(tok) {
			return reason
		}
		return ""
	}
}

func alnumOf(width int) func(string) string {
	reason := "must be exactly " + strconv.Itoa(width) + " alphanumeric characters"
	return func(tok string) string {
		if len(tok) != width || !isAlnum(tok) {
			return reason
		}
		return ""
	}
}

func checkModifierToken(tok string) string {
	if len(tok) != 1 || !isAlpha(tok) {
		return "must be a single letter"
	}
	return ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return len(s) > 0
}
