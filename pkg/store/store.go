// Package store provides table-scoped CRUD over integer row ids, hiding the
// serialization of rows from callers. Absence is a value: Find returns a
// nil Record for missing ids, and Update/Delete on missing ids are silent
// no-ops. Two backends are provided: Bolt (bbolt file) and Memory.
package store

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format of timestamp column values.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one row: a mapping from column name to scalar value. Rows
// loaded from a backend always carry their id under the "id" key.
type Record map[string]any

// Int reads a column as int64, coercing the numeric types the row codec
// may produce. Missing or non-numeric values read as 0.
func (r Record) Int(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case uint:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// String reads a column as a string. Missing values read as "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// ID returns the row identifier.
func (r Record) ID() int64 {
	return r.Int("id")
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Column declares one table column. Default is applied on insert when the
// column is absent; Timestamp columns default to the current UTC time in
// TimestampLayout.
type Column struct {
	Name      string
	Default   any
	Timestamp bool
}

// Schema is a table's declared column set.
type Schema []Column

// apply fills declared defaults into a row about to be inserted. Columns
// already present keep their caller-supplied values.
func (s Schema) apply(fields Record, now time.Time) {
	for _, col := range s {
		if _, ok := fields[col.Name]; ok {
			continue
		}
		if col.Timestamp {
			fields[col.Name] = now.UTC().Format(TimestampLayout)
			continue
		}
		if col.Default != nil {
			fields[col.Name] = col.Default
		}
	}
}

// Store is the uniform create/read/update/delete contract over named
// tables. Implementations must never treat a missing id as an error:
// Find surfaces absence as a nil Record, Update and Delete no-op.
type Store interface {
	// EnsureSchema declares a table's column set. It is idempotent and
	// safe to call on every process start.
	EnsureSchema(table string, schema Schema) error

	// Insert stores a new row and returns its assigned id (positive,
	// unique within the table, immutable). Declared defaults are applied
	// to absent columns. Validation of required fields is the caller's
	// responsibility.
	Insert(table string, fields Record) (int64, error)

	// Find returns the row for id, or nil if no such row exists.
	Find(table string, id int64) (Record, error)

	// FindAll returns every row in ascending id order. Callers wanting
	// newest-first display order sort client-side by a timestamp column.
	FindAll(table string) ([]Record, error)

	// Update merges fields into the row identified by id; omitted columns
	// keep their prior values. Updating a missing id is a silent no-op.
	Update(table string, id int64, fields Record) error

	// Delete removes the row if present. Deleting a missing id is a
	// no-op, making Delete idempotent.
	Delete(table string, id int64) error
}
