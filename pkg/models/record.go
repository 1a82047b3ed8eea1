package models

import "time"

// Field identifies a per-file attribute that can be written to the file list
type Field int

const (
	FieldUnknown Field = iota
	FieldName
	FieldSize
	FieldCreationTime
	FieldLastModifiedTime
)

// TimestampLayout is the UTC layout used for creationTime and lastModifiedTime
const TimestampLayout = "2006-01-02T15:04:05Z"

var fieldNames = map[Field]string{
	FieldName:             "name",
	FieldSize:             "size",
	FieldCreationTime:     "creationTime",
	FieldLastModifiedTime: "lastModifiedTime",
}

// KnownFields returns the recognized fields in declaration order
func KnownFields() []Field {
	return []Field{FieldName, FieldSize, FieldCreationTime, FieldLastModifiedTime}
}

// ParseField maps a configured field name to a Field.
// Names are case-sensitive; anything else yields FieldUnknown.
func ParseField(name string) Field {
	for f, n := range fieldNames {
		if n == name {
			return f
		}
	}
	return FieldUnknown
}

// String returns the configured name of the field
func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Entry is one field/value pair of a Record.
// Value is a string for name, int64 for size and time.Time for timestamps.
type Entry struct {
	Field Field
	Value any
}

// Record holds the requested attributes of one matched file in configured field order
type Record struct {
	Path    string
	Entries []Entry
}

// Add appends a field value to the record
func (r *Record) Add(field Field, value any) {
	r.Entries = append(r.Entries, Entry{Field: field, Value: value})
}

// Get returns the first value stored for field
func (r *Record) Get(field Field) (any, bool) {
	for _, e := range r.Entries {
		if e.Field == field {
			return e.Value, true
		}
	}
	return nil, false
}

// RecordList is the format-independent file list, in scanner order
type RecordList []*Record

// Paths returns the relative paths of all records
func (l RecordList) Paths() []string {
	paths := make([]string, len(l))
	for i, r := range l {
		paths[i] = r.Path
	}
	return paths
}

// FormatTimestamp renders t in UTC truncated to whole seconds
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

// ParseTimestamp is the inverse of FormatTimestamp
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
