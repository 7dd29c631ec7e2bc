package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func requirePresence(name string) ValidatorFunc {
	return func(r *Record) error {
		if r.Get(name) == nil {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func TestValidate_NoValidators(t *testing.T) {
	d := makeContactDefinition(PretendSuccess)
	r := d.New(nil)
	require.NoError(t, r.Validate())
}

func TestValidate_PassAndFail(t *testing.T) {
	d := makeContactDefinition(PretendSuccess)
	d.AddValidator(requirePresence("name"))
	d.AddValidator(requirePresence("email"))

	valid := d.New(map[string]any{"name": "alice", "email": "a@example.com"})
	require.NoError(t, valid.Validate())

	invalid := d.New(map[string]any{"name": "alice"})
	err := invalid.Validate()
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 1)
	require.Contains(t, err.Error(), "email is required")
}

func TestValidate_AggregatesAllFailures(t *testing.T) {
	d := makeContactDefinition(PretendSuccess)
	d.AddValidator(requirePresence("name"))
	d.AddValidator(requirePresence("email"))

	err := d.New(nil).Validate()
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 2)
}

func TestValidate_IndependentOfSave(t *testing.T) {
	d := makeContactDefinition(PretendSuccess)
	d.AddValidator(requirePresence("name"))

	r := d.New(nil)
	require.Error(t, r.Validate())
	// Save's outcome is decided by the mode alone.
	require.NoError(t, r.Save())
}
