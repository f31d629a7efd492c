// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"header too short", ErrHeaderTooShort, "WAV header too short"},
		{"channels", ErrUnsupportedChannels, "unsupported channel count"},
		{"bit depth", ErrUnsupportedBitDepth, "unsupported bits per sample"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("open boom.wav: %w", ErrUnsupportedBitDepth)
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedBitDepth")
	}

	if errors.Is(err, ErrUnsupportedChannels) {
		t.Error("errors.Is() matched the wrong sentinel")
	}
}
