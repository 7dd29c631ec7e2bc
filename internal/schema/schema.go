package schema

import (
	"strings"

	"github.com/spf13/cast"
)

// Column is purely descriptive metadata for a pseudo-column. It is
// never checked against a real database schema.
type Column struct {
	Name     string
	SQLType  string // e.g. "integer", "string", "boolean", "float"
	Default  any
	Nullable bool
}

type Schema struct {
	Cols []Column
}

func (s Schema) NumCols() int { return len(s.Cols) }

// Append adds a column at the end. Duplicate names are legal and are
// simply appended; registration order is preserved.
func (s *Schema) Append(cols ...Column) {
	s.Cols = append(s.Cols, cols...)
}

// Lookup returns the first column with the given name.
func (s Schema) Lookup(name string) (Column, bool) {
	for _, c := range s.Cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Coerce converts a raw string to the Go value matching the column's
// declared SQL type. Unknown types pass the string through untouched.
func (c Column) Coerce(raw string) (any, error) {
	switch normalizeType(c.SQLType) {
	case "integer":
		return cast.ToInt64E(raw)
	case "float":
		return cast.ToFloat64E(raw)
	case "boolean":
		// Query strings carry booleans as "1"/"0".
		switch raw {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return cast.ToBoolE(raw)
	default:
		return raw, nil
	}
}

func normalizeType(t string) string {
	switch strings.ToLower(t) {
	case "int", "int32", "int64", "integer", "bigint", "smallint":
		return "integer"
	case "float", "float64", "double", "decimal", "numeric", "real":
		return "float"
	case "bool", "boolean":
		return "boolean"
	default:
		return strings.ToLower(t)
	}
}
