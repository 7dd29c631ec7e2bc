package model

import "go.uber.org/multierr"

// ValidatorFunc checks one invariant on a record.
type ValidatorFunc func(*Record) error

// AddValidator registers a validator run by Record.Validate, in
// registration order.
func (d *Definition) AddValidator(fn ValidatorFunc) {
	d.validators = append(d.validators, fn)
}

// Validate runs every validator and combines their failures. It is
// independent of Save: a tableless save's outcome is decided by the
// mode alone.
func (r *Record) Validate() error {
	var err error
	for _, fn := range r.def.validators {
		err = multierr.Append(err, fn(r))
	}
	return err
}
