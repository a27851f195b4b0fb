package popuplist

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnsupportedConfigFormat indicates a config file whose extension is
	// neither .toml nor .yaml/.yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
)

// SetupError represents a failure while preparing the widgets' surroundings:
// reading configuration, building a keymap, loading locales or opening an
// input device. Widget transitions themselves never fail.
type SetupError struct {
	Op  string // Operation that failed (e.g., "load_config", "keymap")
	Err error  // Underlying error
}

func (e *SetupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("popuplist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("popuplist: %s", e.Op)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// NewSetupError creates a new setup error.
func NewSetupError(op string, err error) *SetupError {
	return &SetupError{Op: op, Err: err}
}

// IsSetupError checks if an error is a setup error.
func IsSetupError(err error) bool {
	var setupErr *SetupError
	return errors.As(err, &setupErr)
}
