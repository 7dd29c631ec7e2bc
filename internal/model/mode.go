package model

import "fmt"

// Mode selects what the persistence stubs do. It is fixed per
// Definition; the zero value is intentionally not a valid mode so an
// unconfigured definition is caught at call time.
type Mode int

const (
	// FailFast makes every instance-level persistence call return
	// ErrNoDatabase.
	FailFast Mode = iota + 1
	// PretendSuccess makes every persistence call succeed without
	// touching anything.
	PretendSuccess
)

func (m Mode) String() string {
	switch m {
	case FailFast:
		return "fail_fast"
	case PretendSuccess:
		return "pretend_success"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "fail_fast":
		return FailFast, nil
	case "pretend_success":
		return PretendSuccess, nil
	default:
		return 0, fmt.Errorf("invalid tableless mode: %s", s)
	}
}

// valid reports whether m is one of the two recognized modes.
func (m Mode) valid() bool {
	return m == FailFast || m == PretendSuccess
}
