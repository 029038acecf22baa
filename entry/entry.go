// Package entry defines the versioned record persisted per program and the
// codecs that (de)serialize it to the backend's string value type.
package entry

import "time"

// SchemaVersion is the version written into every new entry. Readers reject
// entries carrying any other version.
const SchemaVersion uint16 = 1

// Entry is the persisted record for one program. Entries are written whole
// on every put and never mutated in place.
type Entry struct {
	// Version of the schema used to write out this entry.
	Version uint16 `json:"version" msgpack:"version"`

	// Content is the textual content of the program.
	Content string `json:"content" msgpack:"content"`

	// MTime is the last modification time, normalized to UTC.
	MTime time.Time `json:"mtime" msgpack:"mtime"`
}

// New builds a fresh entry for content with the current schema version and
// the given modification time.
func New(content string, mtime time.Time) Entry {
	return Entry{Version: SchemaVersion, Content: content, MTime: mtime.UTC()}
}

// Metadata is the display-oriented projection of an entry used in listings.
type Metadata struct {
	// MTime is the entry's modification time in the caller's location.
	MTime time.Time

	// Length is the content size in bytes.
	Length int64
}

// Metadata projects the entry's listing metadata, adjusting the modification
// time into loc. A nil loc means local time.
func (e Entry) Metadata(loc *time.Location) Metadata {
	if loc == nil {
		loc = time.Local
	}
	return Metadata{MTime: e.MTime.In(loc), Length: int64(len(e.Content))}
}
