// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrHeaderTooShort      = errors.New("WAV header too short")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	ErrUnsupportedBitDepth = errors.New("unsupported bits per sample")
)
