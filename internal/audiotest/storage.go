// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds in-memory fixtures shared by the tests.
package audiotest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/ik5/sndmix/formats/wav"
)

// ErrInjected is returned by reads of files added with PutFaulty.
var ErrInjected = errors.New("injected read failure")

// Storage is an in-memory sound store. It satisfies audio.Storage without
// importing it, and counts opened and closed streams so tests can check for
// leaks.
type Storage struct {
	mu     sync.Mutex
	files  map[string]entry
	opened int
	closed int
}

type entry struct {
	data   []byte
	failAt int // -1 never fails
}

func NewStorage() *Storage {
	return &Storage{files: make(map[string]entry)}
}

// Put stores raw bytes under name.
func (s *Storage) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[name] = entry{data: data, failAt: -1}
}

// PutPCM stores a canonical WAV file built from f and payload.
func (s *Storage) PutPCM(name string, f wav.Format, payload []byte) {
	s.Put(name, WAV(f, payload))
}

// PutFaulty stores a WAV file whose reads fail once the stream offset
// reaches failAt.
func (s *Storage) PutFaulty(name string, f wav.Format, payload []byte, failAt int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[name] = entry{data: WAV(f, payload), failAt: failAt}
}

func (s *Storage) Open(name string) (io.ReadSeekCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}

	s.opened++

	return &file{Reader: bytes.NewReader(e.data), failAt: e.failAt, s: s}, nil
}

// OpenStreams returns the number of streams currently open.
func (s *Storage) OpenStreams() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.opened - s.closed
}

type file struct {
	*bytes.Reader
	failAt int
	s      *Storage
	done   bool
}

func (f *file) Read(p []byte) (int, error) {
	if f.failAt >= 0 {
		pos := int(f.Size()) - f.Len()
		if pos >= f.failAt {
			return 0, ErrInjected
		}

		if pos+len(p) > f.failAt {
			p = p[:f.failAt-pos]
		}
	}

	return f.Reader.Read(p)
}

func (f *file) Close() error {
	if f.done {
		return nil
	}

	f.done = true

	f.s.mu.Lock()
	f.s.closed++
	f.s.mu.Unlock()

	return nil
}

// WAV builds a canonical WAV file in memory. It panics on an unsupported
// format, which is a broken test.
func WAV(f wav.Format, payload []byte) []byte {
	if f.SampleRate == 0 {
		f.SampleRate = 8000
	}

	buf := new(bytes.Buffer)
	if err := wav.WritePCM(buf, f, payload); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

var (
	Mono8    = wav.Format{Channels: 1, BitsPerSample: 8, SampleRate: 8000}
	Stereo8  = wav.Format{Channels: 2, BitsPerSample: 8, SampleRate: 8000}
	Mono16   = wav.Format{Channels: 1, BitsPerSample: 16, SampleRate: 8000}
	Stereo16 = wav.Format{Channels: 2, BitsPerSample: 16, SampleRate: 8000}
)

// PCM16 encodes samples as little-endian payload bytes.
func PCM16(samples ...int16) []byte {
	return wav.EncodeInt16(samples)
}

// Constant16 returns frames stereo frames with every sample set to v.
func Constant16(frames int, v int16) []byte {
	samples := make([]int16, frames*2)
	for i := range samples {
		samples[i] = v
	}

	return wav.EncodeInt16(samples)
}
