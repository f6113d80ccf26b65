package aes256bf

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ConfigError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     &ConfigError{Field: "mode", Value: "bogus", Message: "unrecognized derivation mode"},
			wantMsg: "config error: mode: unrecognized derivation mode",
		},
		{
			name:    "without field",
			err:     &ConfigError{Message: "invalid configuration"},
			wantMsg: "config error: invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("ConfigError.Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	base := errors.New("bad hex")
	err := NewConfigErrorWrap("ciphertext", base)
	if !errors.Is(err, base) {
		t.Errorf("expected NewConfigErrorWrap to wrap %v", base)
	}
}

func TestUnsupportedModeError(t *testing.T) {
	err := NewUnsupportedModeError(Factory, "missing LCG binding")
	want := "unsupported mode factory: missing LCG binding"
	if got := err.Error(); got != want {
		t.Errorf("UnsupportedModeError.Error() = %q, want %q", got, want)
	}
}

func TestInternalInvariantError(t *testing.T) {
	err := NewInternalInvariantError("prng_table_length", "must be 255 bytes")
	want := "internal invariant violated (prng_table_length): must be 255 bytes"
	if got := err.Error(); got != want {
		t.Errorf("InternalInvariantError.Error() = %q, want %q", got, want)
	}
}

func TestErrorCheckers(t *testing.T) {
	ce := NewConfigError("mode", nil, "test")
	ue := NewUnsupportedModeError(Factory, "test")
	ie := NewInternalInvariantError("inv", "test")
	generic := errors.New("generic error")

	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"IsConfigError with ConfigError", ce, IsConfigError, true},
		{"IsConfigError with other error", generic, IsConfigError, false},
		{"IsUnsupportedModeError with UnsupportedModeError", ue, IsUnsupportedModeError, true},
		{"IsUnsupportedModeError with other error", generic, IsUnsupportedModeError, false},
		{"IsInternalInvariantError with InternalInvariantError", ie, IsInternalInvariantError, true},
		{"IsInternalInvariantError with other error", generic, IsInternalInvariantError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("error checker = %v, want %v", got, tt.want)
			}
		})
	}
}
