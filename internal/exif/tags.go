package exif

import (
	"sort"

	"github.com/google/uuid"

	"github.com/archivista/photoyard/naming"
)

// Tag names in exiftool's GROUP:Name form.
const (
	TagDateTimeOriginal = "EXIF:DateTimeOriginal"
	TagDateCreated      = "XMP-iptcCore:DateCreated"
	TagPhotoshopDate    = "XMP-photoshop:DateCreated"
	TagIdentifier       = "XMP-dc:Identifier"
	TagDocumentID       = "XMP-xmpMM:DocumentID"
)

// TagSet is the metadata to write into one file.
type TagSet map[string]string

// SortedNames returns the tag names in lexical order, for deterministic
// command lines and log output.
func (t TagSet) SortedNames() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildTagSet maps a validated record to its tag set with a freshly
// generated identifier.
func BuildTagSet(rec naming.ValidatedRecord) TagSet {
	return BuildTagSetWithID(rec, uuid.New().String())
}

// BuildTagSetWithID is BuildTagSet with the identifier supplied by the
// caller. The same identifier is duplicated into both identifier fields.
//
// Only exact dates (modifier E) get timestamp fields; a before/circa/after
// date must never claim a time of day in the metadata, however precise the
// filename is. Date-only fields degrade with the filename's precision and
// are omitted entirely when the year is unknown.
func BuildTagSetWithID(rec naming.ValidatedRecord, id string) TagSet {
	tags := TagSet{
		TagIdentifier: id,
		TagDocumentID: id,
	}

	if rec.Modifier.Exact() {
		tags[TagDateTimeOriginal] = rec.ExifTimestamp()
		if iso := rec.ISODateTime(); iso != "" {
			tags[TagPhotoshopDate] = iso
		}
	}
	if date := rec.DateCreated(); date != "" {
		tags[TagDateCreated] = date
	}

	return tags
}
