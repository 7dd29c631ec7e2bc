package model

import (
	"fmt"

	"github.com/tuannm99/tableless/internal/querystring"
)

// Record is one instance of a tableless model: an attribute map plus a
// destroyed flag. Every persistence method's outcome depends only on
// the definition's mode, never on the record's state.
type Record struct {
	def       *Definition
	attrs     map[string]any
	destroyed bool
}

func (r *Record) Definition() *Definition { return r.def }

// Get returns the attribute value, nil if absent.
func (r *Record) Get(name string) any {
	return r.attrs[name]
}

// Set assigns an attribute. A destroyed record is read-only.
func (r *Record) Set(name string, value any) error {
	if r.destroyed {
		return ErrReadOnlyRecord
	}
	r.attrs[name] = value
	return nil
}

// Attributes returns a copy of the attribute map.
func (r *Record) Attributes() map[string]any {
	out := make(map[string]any, len(r.attrs))
	for k, v := range r.attrs {
		out[k] = v
	}
	return out
}

func (r *Record) Destroyed() bool { return r.destroyed }

// Save pretends to persist the record. FailFast: ErrNoDatabase.
// PretendSuccess: success with nothing persisted.
func (r *Record) Save() error {
	switch r.def.mode {
	case FailFast:
		return ErrNoDatabase
	case PretendSuccess:
		return nil
	default:
		return ErrInvalidConfiguration
	}
}

// MustSave is Save with Ruby bang semantics: it panics instead of
// returning an error.
func (r *Record) MustSave() {
	if err := r.Save(); err != nil {
		panic(fmt.Errorf("tableless save: %w", err))
	}
}

// Destroy marks the record destroyed and freezes it under
// PretendSuccess; under FailFast it fails like every other write.
func (r *Record) Destroy() error {
	switch r.def.mode {
	case FailFast:
		return ErrNoDatabase
	case PretendSuccess:
		r.destroyed = true
		return nil
	default:
		return ErrInvalidConfiguration
	}
}

// Reload returns the receiver unchanged under PretendSuccess; there is
// no store to reload from.
func (r *Record) Reload() (*Record, error) {
	switch r.def.mode {
	case FailFast:
		return nil, ErrNoDatabase
	case PretendSuccess:
		return r, nil
	default:
		return nil, ErrInvalidConfiguration
	}
}

// Transaction runs fn inline with no isolation and no rollback. Under
// FailFast fn is never invoked.
func (r *Record) Transaction(fn func() error) error {
	switch r.def.mode {
	case FailFast:
		return ErrNoDatabase
	case PretendSuccess:
		return fn()
	default:
		return ErrInvalidConfiguration
	}
}

// ToQueryString serializes the non-nil attributes as a URL query
// string. With a prefix each key is emitted as "prefix[key]".
func (r *Record) ToQueryString(prefix string) string {
	return querystring.Encode(r.attrs, prefix)
}
