// Package tableless lets a record-shaped value behave like a persisted
// row while having no backing database. Persistence calls are stubs:
// they fail fast or pretend success, chosen per definition.
package tableless

import (
	"github.com/tuannm99/tableless/internal"
	"github.com/tuannm99/tableless/internal/model"
	"github.com/tuannm99/tableless/internal/schema"
)

type (
	Definition    = model.Definition
	Record        = model.Record
	Mode          = model.Mode
	Option        = model.Option
	ColumnOption  = model.ColumnOption
	ValidatorFunc = model.ValidatorFunc
	Column        = schema.Column
	Config        = internal.TablelessConfig
)

const (
	FailFast       = model.FailFast
	PretendSuccess = model.PretendSuccess
)

var (
	ErrNoDatabase           = model.ErrNoDatabase
	ErrInvalidConfiguration = model.ErrInvalidConfiguration
	ErrReadOnlyRecord       = model.ErrReadOnlyRecord
)

// NewDefinition marks a model as tableless, fail_fast by default.
func NewDefinition(name string, opts ...Option) *Definition {
	return model.NewDefinition(name, opts...)
}

func WithMode(m Mode) Option { return model.WithMode(m) }

func WithDefault(v any) ColumnOption { return model.WithDefault(v) }

func NotNull() ColumnOption { return model.NotNull() }

func ParseMode(s string) (Mode, error) { return model.ParseMode(s) }

// LoadConfig reads a YAML definition file; call Definition on the
// result to materialize the model.
func LoadConfig(path string) (*Config, error) { return internal.LoadConfig(path) }
