// SPDX-License-Identifier: EPL-2.0

// Package wav parses and writes the canonical 44 byte PCM WAV header.
//
// Only uncompressed PCM is handled, mono or stereo, 8 or 16 bits per sample.
// The parser does not walk RIFF chunks: the payload is assumed to start at
// byte 44 and run to the end of the stream.
//
// # Parsing
//
//	f, err := wav.ParseHeader(file)
//	if err != nil {
//	    // ErrHeaderTooShort, ErrUnsupportedChannels or ErrUnsupportedBitDepth
//	}
//	// file is now positioned at the first payload byte (f.DataOffset == 44)
//
// # Writing
//
// WritePCM writes a header followed by a raw payload in the announced layout:
//
//	f := wav.Format{Channels: 2, BitsPerSample: 16, SampleRate: 44100}
//	err := wav.WritePCM(out, f, wav.EncodeInt16(samples))
//
// # Layout
//
//	offset 22  uint16 LE  channel count
//	offset 24  uint32 LE  sample rate
//	offset 34  uint16 LE  bits per sample
//	offset 44             payload
package wav
