// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	if ErrInvalidDstSize == nil {
		t.Fatal("ErrInvalidDstSize is nil")
	}

	expectedMsg := "dst size must be frames * 2 interleaved stereo samples"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}
}

func TestLoadError(t *testing.T) {
	t.Parallel()

	err := error(&LoadError{Name: "boom.wav", Err: ErrNotFound})

	if err.Error() != `load "boom.wav": sound resource not found` {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is() failed through LoadError")
	}

	wrapped := fmt.Errorf("script: %w", err)

	var le *LoadError
	if !errors.As(wrapped, &le) || le.Name != "boom.wav" {
		t.Error("errors.As() failed for wrapped LoadError")
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{
		ErrInvalidDstSize, ErrInvalidFrameCount, ErrNotFound, ErrNotSeekable,
		ErrMisalignedFormat, ErrNotRegistered, ErrAssetClosed,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}
