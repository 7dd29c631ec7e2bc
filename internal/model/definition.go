package model

import (
	"log/slog"

	"github.com/tuannm99/tableless/internal/querystring"
	"github.com/tuannm99/tableless/internal/schema"
)

// Definition is the per-class configuration of a tableless model: the
// stub mode, the declared pseudo-columns and any validators. Built
// once; building a new Definition for the same model replaces the old
// one wholesale.
type Definition struct {
	name       string
	mode       Mode
	schema     schema.Schema
	validators []ValidatorFunc
}

type Option func(*Definition)

// WithMode overrides the default FailFast mode.
func WithMode(m Mode) Option {
	return func(d *Definition) { d.mode = m }
}

// NewDefinition marks a model as tableless. The name is used for
// logging and has no schema meaning.
func NewDefinition(name string, opts ...Option) *Definition {
	d := &Definition{name: name, mode: FailFast}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Definition) Name() string { return d.name }
func (d *Definition) Mode() Mode   { return d.mode }

type ColumnOption func(*schema.Column)

func WithDefault(v any) ColumnOption {
	return func(c *schema.Column) { c.Default = v }
}

func NotNull() ColumnOption {
	return func(c *schema.Column) { c.Nullable = false }
}

// AddColumn registers one pseudo-column. No uniqueness check: a
// duplicate name is appended like any other.
func (d *Definition) AddColumn(name, sqlType string, opts ...ColumnOption) {
	col := schema.Column{Name: name, SQLType: sqlType, Nullable: true}
	for _, opt := range opts {
		opt(&col)
	}
	d.schema.Append(col)
}

// AddColumns registers several columns of the same type at once.
func (d *Definition) AddColumns(sqlType string, names ...string) {
	for _, name := range names {
		d.AddColumn(name, sqlType)
	}
}

// Columns returns the declared columns in registration order.
func (d *Definition) Columns() []schema.Column {
	return d.schema.Cols
}

// New constructs a record, filling in declared column defaults for
// attributes the caller did not provide.
func (d *Definition) New(attrs map[string]any) *Record {
	r := &Record{def: d, attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		r.attrs[k] = v
	}
	for _, col := range d.schema.Cols {
		if col.Default == nil {
			continue
		}
		if _, ok := r.attrs[col.Name]; !ok {
			r.attrs[col.Name] = col.Default
		}
	}
	return r
}

// FromQueryString parses a query string and constructs a record from
// the resulting attribute mapping. Values whose key matches a declared
// column are coerced to the column's type; anything else stays a
// string. Empty input yields a default-constructed record.
func (d *Definition) FromQueryString(s string) *Record {
	raw := querystring.Decode(s)
	attrs := make(map[string]any, len(raw))
	for k, v := range raw {
		if col, ok := d.schema.Lookup(k); ok {
			if coerced, err := col.Coerce(v); err == nil {
				attrs[k] = coerced
				continue
			}
		}
		attrs[k] = v
	}
	return d.New(attrs)
}

// Find never has rows to return: under FailFast it warns and degrades
// to a nil record, under PretendSuccess there is still nothing to
// find. Only a misconfigured mode is an error.
func (d *Definition) Find(id any) (*Record, error) {
	switch d.mode {
	case FailFast:
		slog.Warn("find attempted on tableless model", "model", d.name, "id", id)
		return nil, nil
	case PretendSuccess:
		slog.Debug("find on tableless model returns no rows", "model", d.name, "id", id)
		return nil, nil
	default:
		return nil, ErrInvalidConfiguration
	}
}

// Create builds a record and pretends to save it. Under FailFast the
// class-level call degrades to a warning and a nil record rather than
// raising, mirroring Find.
func (d *Definition) Create(attrs map[string]any) (*Record, error) {
	switch d.mode {
	case FailFast:
		slog.Warn("create attempted on tableless model", "model", d.name)
		return nil, nil
	case PretendSuccess:
		return d.New(attrs), nil
	default:
		return nil, ErrInvalidConfiguration
	}
}

// DestroyAll reports how many rows were destroyed, which is always
// zero.
func (d *Definition) DestroyAll() (int, error) {
	switch d.mode {
	case FailFast:
		slog.Warn("destroy attempted on tableless model", "model", d.name)
		return 0, nil
	case PretendSuccess:
		return 0, nil
	default:
		return 0, ErrInvalidConfiguration
	}
}
