// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteHeader_Fields(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	f := Format{Channels: 2, BitsPerSample: 16, SampleRate: 44100}

	if err := WriteHeader(buf, f, 400); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}

	h := buf.Bytes()
	if len(h) != HeaderSize {
		t.Fatalf("header length = %d, want %d", len(h), HeaderSize)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(h[4:8]), 436},
		{"fmt size", binary.LittleEndian.Uint32(h[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(h[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(h[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(h[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(h[28:32]), 176400},
		{"block align", uint32(binary.LittleEndian.Uint16(h[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(h[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(h[40:44]), 400},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(h[0:4]) != "RIFF" || string(h[8:12]) != "WAVE" || string(h[36:40]) != "data" {
		t.Errorf("bad markers in header %q", h)
	}
}

func TestWriteHeader_RejectsUnsupported(t *testing.T) {
	t.Parallel()

	err := WriteHeader(new(bytes.Buffer), Format{Channels: 3, BitsPerSample: 16}, 0)
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("WriteHeader() error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestWritePCM_RoundTrip(t *testing.T) {
	t.Parallel()

	payload := EncodeInt16([]int16{-1000, 1000, 32767, -32768})
	f := Format{Channels: 2, BitsPerSample: 16, SampleRate: 8000}

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, f, payload); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	r := bytes.NewReader(buf.Bytes())
	got, err := ParseHeader(r)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	f.DataOffset = HeaderSize
	if got != f {
		t.Errorf("ParseHeader() = %+v, want %+v", got, f)
	}

	if !bytes.Equal(buf.Bytes()[HeaderSize:], payload) {
		t.Error("payload was not written verbatim")
	}
}

func TestEncodeInt16(t *testing.T) {
	t.Parallel()

	got := EncodeInt16([]int16{1, -1, 256})
	want := []byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x01}

	if !bytes.Equal(got, want) {
		t.Errorf("EncodeInt16() = %v, want %v", got, want)
	}
}
