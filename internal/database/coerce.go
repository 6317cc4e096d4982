package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coercions between wire values and storage values. All of them are pure and
// applied at the CRUD boundary: identifiers become opaque strings on the way
// out, the legacy "None" sentinel becomes a real null, and date-like values
// become the compact timestamp the tables store.

const (
	// compactTimeLayout is the storage format for created/updated stamps and
	// any other date-valued column: YYYYMMDDHHMMSS.
	compactTimeLayout = "20060102150405"

	// isoTimeLayout matches ISO-8601 timestamps with fractional seconds, the
	// shape JavaScript clients send (e.g. 2024-03-01T09:30:00.000000Z).
	isoTimeLayout = "2006-01-02T15:04:05.999999Z"
)

// isIdentifierKey reports whether a record key names an identifier column.
func isIdentifierKey(key string) bool {
	return key == "id" || strings.HasSuffix(key, "_id")
}

// identifierString renders an identifier value as its canonical string form.
// pgx returns uuid columns as [16]byte; everything else stringifies directly.
func identifierString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case [16]byte:
		return uuid.UUID(v).String()
	default:
		return fmt.Sprint(v)
	}
}

// stringifyIdentifiers rewrites every id / *_id field of a record to its
// string form, in place. Nil values are left alone.
func stringifyIdentifiers(record Record) Record {
	for key, value := range record {
		if value == nil || !isIdentifierKey(key) {
			continue
		}
		record[key] = identifierString(value)
	}
	return record
}

// normalizeNullSentinel replaces the literal string "None" with nil, in
// place. The sentinel is an encoding artifact of rows imported from the old
// system.
func normalizeNullSentinel(record Record) Record {
	for key, value := range record {
		if s, ok := value.(string); ok && s == "None" {
			record[key] = nil
		}
	}
	return record
}

// coerceDates rewrites date-like values to the compact storage format, in
// place. A value qualifies if it is a time.Time or a string in ISO-8601 form
// with fractional seconds; anything else passes through untouched.
func coerceDates(record Record) Record {
	for key, value := range record {
		switch v := value.(type) {
		case time.Time:
			record[key] = v.Format(compactTimeLayout)
		case string:
			if t, err := time.Parse(isoTimeLayout, v); err == nil {
				record[key] = t.Format(compactTimeLayout)
			}
		}
	}
	return record
}

// compactTimestamp renders a time in the compact storage format.
func compactTimestamp(t time.Time) string {
	return t.Format(compactTimeLayout)
}

// parseCompactTimestamp is the inverse of compactTimestamp, used by callers
// that need the stored stamp back as a time value.
func parseCompactTimestamp(s string) (time.Time, error) {
	return time.Parse(compactTimeLayout, s)
}
