// SPDX-License-Identifier: EPL-2.0

package sndmix

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/sndmix/audio"
)

// Sink consumes mixed blocks. The block is only valid during the call.
type Sink interface {
	WriteBlock(block []int16) error
}

// Render is the pull model host: it calls Mix blocks times on the calling
// goroutine and hands every block to sink.
func Render(m *audio.Mixer, blocks int, sink Sink) error {
	out := make([]int16, m.BlockSize())

	for i := range blocks {
		if err := m.Mix(out); err != nil {
			return fmt.Errorf("mix block %d: %w", i, err)
		}

		if err := sink.WriteBlock(out); err != nil {
			return fmt.Errorf("write block %d: %w", i, err)
		}
	}

	return nil
}

// RenderUntilIdle renders until a tick mixes no sound at all, or until
// maxBlocks blocks were written. It returns the number of blocks written,
// the idle one excluded.
func RenderUntilIdle(m *audio.Mixer, maxBlocks int, sink Sink) (int, error) {
	return RenderUntil(m, maxBlocks, sink, func() bool { return m.Stats().Voices == 0 })
}

// RenderUntil renders until idle reports true right after a block was mixed,
// or until maxBlocks blocks were written. The idle block is not written.
// Callers whose sink drives game logic that starts sounds later decide
// themselves when the render is over.
func RenderUntil(m *audio.Mixer, maxBlocks int, sink Sink, idle func() bool) (int, error) {
	out := make([]int16, m.BlockSize())

	for i := range maxBlocks {
		if err := m.Mix(out); err != nil {
			return i, fmt.Errorf("mix block %d: %w", i, err)
		}

		if idle() {
			return i, nil
		}

		if err := sink.WriteBlock(out); err != nil {
			return i, fmt.Errorf("write block %d: %w", i, err)
		}
	}

	return maxBlocks, nil
}

// BlocksFor returns how many blocks of frames frames cover d at sampleRate,
// rounded up.
func BlocksFor(d time.Duration, sampleRate, frames int) int {
	if d <= 0 || sampleRate <= 0 || frames <= 0 {
		return 0
	}

	total := int64(d) * int64(sampleRate) / int64(time.Second)

	return int((total + int64(frames) - 1) / int64(frames))
}

// WAVSink writes blocks to a 16-bit stereo WAV file.
type WAVSink struct {
	enc *gowav.Encoder
	buf *goaudio.IntBuffer
}

func NewWAVSink(w io.WriteSeeker, sampleRate int) *WAVSink {
	return &WAVSink{
		enc: gowav.NewEncoder(w, sampleRate, 16, audio.OutputChannels, 1),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: audio.OutputChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: 16,
		},
	}
}

func (s *WAVSink) WriteBlock(block []int16) error {
	if cap(s.buf.Data) < len(block) {
		s.buf.Data = make([]int, len(block))
	}

	s.buf.Data = s.buf.Data[:len(block)]
	for i, v := range block {
		s.buf.Data[i] = int(v)
	}

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalizes the WAV header. It does not close the underlying writer.
func (s *WAVSink) Close() error {
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
