package model

import "errors"

var (
	// ErrNoDatabase is returned by every instance-level persistence
	// call on a fail-fast definition.
	ErrNoDatabase = errors.New("model: no database backs this record")
	// ErrInvalidConfiguration is returned when a definition's mode is
	// neither fail_fast nor pretend_success. Surfaces at call time.
	ErrInvalidConfiguration = errors.New("model: invalid tableless mode")
	// ErrReadOnlyRecord is returned by Set on a destroyed record.
	ErrReadOnlyRecord = errors.New("model: record is destroyed and read-only")
)
