// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be frames * 2 interleaved stereo samples")
	ErrInvalidFrameCount = errors.New("frame count must be positive")
	ErrNotFound          = errors.New("sound resource not found")
	ErrNotSeekable       = errors.New("sound resource is not seekable")
	ErrMisalignedFormat  = errors.New("frame size does not divide the mix scratch buffer")
	ErrNotRegistered     = errors.New("sound instance is not registered with this mixer")

	// ErrAssetClosed is the panic value for reads on a closed asset.
	ErrAssetClosed = errors.New("read on closed sound asset")
)

// LoadError is returned when a sound cannot be loaded. The sound is simply
// unusable; nothing else is affected.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
