package modelhash

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "ErrInvalidArgs",
			err:     ErrInvalidArgs,
			wantMsg: "modelhash: invalid arguments",
		},
		{
			name:    "ErrFileError",
			err:     ErrFileError,
			wantMsg: "modelhash: file error",
		},
		{
			name:    "ErrNetworkError",
			err:     ErrNetworkError,
			wantMsg: "modelhash: network error",
		},
		{
			name:    "ErrRegistryError",
			err:     ErrRegistryError,
			wantMsg: "modelhash: invalid registry response",
		},
		{
			name:    "ErrInvalidDigest",
			err:     ErrInvalidDigest,
			wantMsg: "modelhash: invalid digest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()

			if !strings.HasPrefix(got, "modelhash: ") {
				t.Errorf("%s: message %q does not have 'modelhash: ' prefix", tt.name, got)
			}

			if got != tt.wantMsg {
				t.Errorf("%s: got %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}

func TestErrorsIs(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidArgs", ErrInvalidArgs},
		{"ErrFileError", ErrFileError},
		{"ErrNetworkError", ErrNetworkError},
		{"ErrRegistryError", ErrRegistryError},
		{"ErrInvalidDigest", ErrInvalidDigest},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("operation failed: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", tt.name)
			}

			doubleWrapped := fmt.Errorf("outer context: %w", wrapped)
			if !errors.Is(doubleWrapped, tt.err) {
				t.Errorf("errors.Is(doubleWrapped, %s) = false, want true", tt.name)
			}

			for _, other := range sentinels {
				if other.name != tt.name && errors.Is(wrapped, other.err) {
					t.Errorf("errors.Is(wrapped %s, %s) = true, want false", tt.name, other.name)
				}
			}
		})
	}
}
