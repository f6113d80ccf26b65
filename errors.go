package aes256bf

import (
	"errors"
	"fmt"
)

// Error kinds mirror spec.md §7: ConfigError, UnsupportedModeError, and
// InternalInvariantError. All three are surfaced before any search begins;
// the per-candidate computation itself is total and raises no errors.

// ConfigError represents an invalid mode, malformed ciphertext, or
// inconsistent flag combination caught before the sweep starts.
type ConfigError struct {
	Field   string // the field or flag that failed validation
	Value   any    // the invalid value, if any
	Message string // human-readable explanation
	Err     error  // underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnsupportedModeError represents a Factory / FactoryReversed mode selected
// without an explicit LCG binding (spec.md §4.2 Open Question).
type UnsupportedModeError struct {
	Mode    DerivationMode
	Message string
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("unsupported mode %s: %s", e.Mode, e.Message)
}

// InternalInvariantError represents a fatal, non-recoverable violation of a
// data invariant (e.g. the PRNG table failing to contain exactly 255 bytes).
type InternalInvariantError struct {
	Invariant string
	Message   string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated (%s): %s", e.Invariant, e.Message)
}

// Sentinel errors for conditions that don't carry structured context.
var (
	ErrNilSink          = errors.New("sink cannot be nil")
	ErrCiphertextLength = errors.New("ciphertext must be exactly 16 bytes")
	ErrPrngTableLength  = errors.New("prng table must be exactly 255 bytes")
	ErrPrngTableZero    = errors.New("prng table must not contain the byte 0x00")
)

// NewConfigError creates a new config error.
func NewConfigError(field string, value any, message string) error {
	return &ConfigError{Field: field, Value: value, Message: message}
}

// NewConfigErrorWrap wraps an underlying error as a config error.
func NewConfigErrorWrap(field string, err error) error {
	return &ConfigError{Field: field, Message: err.Error(), Err: err}
}

// NewUnsupportedModeError creates a new unsupported-mode error.
func NewUnsupportedModeError(mode DerivationMode, message string) error {
	return &UnsupportedModeError{Mode: mode, Message: message}
}

// NewInternalInvariantError creates a new internal-invariant error.
func NewInternalInvariantError(invariant, message string) error {
	return &InternalInvariantError{Invariant: invariant, Message: message}
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsUnsupportedModeError reports whether err is, or wraps, an
// UnsupportedModeError.
func IsUnsupportedModeError(err error) bool {
	var ue *UnsupportedModeError
	return errors.As(err, &ue)
}

// IsInternalInvariantError reports whether err is, or wraps, an
// InternalInvariantError.
func IsInternalInvariantError(err error) bool {
	var ie *InternalInvariantError
	return errors.As(err, &ie)
}
