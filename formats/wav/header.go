// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// HeaderSize is the size of the canonical PCM WAV header. Sample data
// always starts right after it.
const HeaderSize = 44

// Format describes the PCM payload of a WAV stream.
type Format struct {
	Channels      int
	BitsPerSample int
	// SampleRate is informational only; no resampling is ever done.
	SampleRate int
	DataOffset int64
}

// BytesPerFrame is the size of one sample-frame across all channels.
func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitsPerSample / 8
}

// Duration of payloadSize bytes of data in this format. Zero when the sample
// rate is unknown.
func (f Format) Duration(payloadSize int64) time.Duration {
	bpf := f.BytesPerFrame()
	if bpf == 0 || f.SampleRate <= 0 {
		return 0
	}

	frames := payloadSize / int64(bpf)

	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%dch %dbit %dHz", f.Channels, f.BitsPerSample, f.SampleRate)
}

// Validate reports whether the channel count and bit depth are supported.
func (f Format) Validate() error {
	if f.Channels != 1 && f.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, f.Channels)
	}

	if f.BitsPerSample != 8 && f.BitsPerSample != 16 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitsPerSample)
	}

	return nil
}

// ParseHeader reads the 44 byte canonical header from r and returns the
// payload format. On success r is positioned at the first payload byte.
//
// Only the channel count (offset 22) and bits per sample (offset 34) are
// enforced. The remaining fields just have to be present.
func ParseHeader(r io.Reader) (Format, error) {
	var header [HeaderSize]byte

	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Format{}, ErrHeaderTooShort
		}

		return Format{}, fmt.Errorf("read header: %w", err)
	}

	f := Format{
		Channels:      int(binary.LittleEndian.Uint16(header[22:24])),
		SampleRate:    int(binary.LittleEndian.Uint32(header[24:28])),
		BitsPerSample: int(binary.LittleEndian.Uint16(header[34:36])),
		DataOffset:    HeaderSize,
	}

	if err := f.Validate(); err != nil {
		return Format{}, err
	}

	return f, nil
}
