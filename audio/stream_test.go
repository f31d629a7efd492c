// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/ik5/sndmix/internal/audiotest"
)

func TestStream_ArbitraryReadSizes(t *testing.T) {
	t.Parallel()

	const frames = 4

	samples := make([]int16, frames*2*3)
	for i := range samples {
		samples[i] = int16(i + 1)
	}

	st := audiotest.NewStorage()
	st.PutPCM("s.wav", audiotest.Stereo16, audiotest.PCM16(samples...))

	m := newTestMixer(t, frames)
	mustLoad(t, m, st, "s.wav").Play()

	s := NewStream(m)

	got := new(bytes.Buffer)
	for _, n := range []int{1, 3, 7, 16, 5, 32} {
		buf := make([]byte, n)
		if _, err := io.ReadFull(s, buf); err != nil {
			t.Fatalf("Read(%d) error = %v", n, err)
		}
		got.Write(buf)
	}

	// 64 bytes are four 16 byte blocks; the sound fills three of them.
	want := make([]byte, 64)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(want[i*2:], uint16(v))
	}

	if !bytes.Equal(got.Bytes(), want) {
		t.Errorf("stream bytes = %v, want %v", got.Bytes(), want)
	}

	if s := m.Stats(); s.Ticks != 4 {
		t.Errorf("Ticks = %d, want 4", s.Ticks)
	}
}

func TestStream_SilentWhenIdle(t *testing.T) {
	t.Parallel()

	m := newTestMixer(t, 16)
	s := NewStream(m)

	buf := make([]byte, 1000)
	n, err := s.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read() = %d, %v", n, err)
	}

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}
