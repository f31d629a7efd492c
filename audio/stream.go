// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

// Stream adapts a Mixer to an io.Reader of interleaved signed 16-bit
// little-endian stereo bytes, for device callbacks that ask for arbitrary
// amounts. A new block is mixed whenever the previous one is used up. The
// stream never ends.
type Stream struct {
	m     *Mixer
	block []int16
	buf   []byte
	off   int // first unread byte of buf
}

func NewStream(m *Mixer) *Stream {
	buf := make([]byte, m.BlockSize()*2)

	return &Stream{
		m:     m,
		block: make([]int16, m.BlockSize()),
		buf:   buf,
		off:   len(buf),
	}
}

func (s *Stream) Read(p []byte) (int, error) {
	n := 0

	for n < len(p) {
		if s.off == len(s.buf) {
			if err := s.m.Mix(s.block); err != nil {
				return n, err
			}

			for i, v := range s.block {
				binary.LittleEndian.PutUint16(s.buf[i<<1:], uint16(v))
			}

			s.off = 0
		}

		c := copy(p[n:], s.buf[s.off:])
		s.off += c
		n += c
	}

	return n, nil
}
