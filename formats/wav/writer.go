// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteHeader writes a canonical 44 byte PCM header announcing dataSize bytes
// of payload.
func WriteHeader(w io.Writer, f Format, dataSize uint32) error {
	if err := f.Validate(); err != nil {
		return err
	}

	numChannels := uint16(f.Channels)
	bitsPerSample := uint16(f.BitsPerSample)
	blockAlign := uint16(f.BytesPerFrame())
	byteRate := uint32(f.SampleRate) * uint32(blockAlign)
	riffSize := 36 + dataSize

	var header [HeaderSize]byte

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	return nil
}

// WritePCM writes a complete WAV stream: header followed by the raw payload.
// The payload is written as is, so it must already be in f's layout.
func WritePCM(w io.Writer, f Format, payload []byte) error {
	if err := WriteHeader(w, f, uint32(len(payload))); err != nil {
		return err
	}

	if len(payload) == 0 {
		return nil
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// EncodeInt16 converts signed 16-bit samples to little-endian payload bytes.
func EncodeInt16(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(s))
	}

	return buf
}
