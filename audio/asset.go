// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/ik5/sndmix/formats/wav"
)

// Asset is an open PCM stream and its parsed format. It carries no playback
// state and is not safe for concurrent use; an Instance serializes access.
type Asset struct {
	name   string
	format wav.Format
	rs     io.ReadSeekCloser

	pos    int64 // absolute stream offset
	size   int64 // absolute stream length
	closed bool
}

// OpenAsset opens name through st and parses its header. The stream is
// closed again if the header is rejected.
func OpenAsset(st Storage, name string) (*Asset, error) {
	rs, err := st.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return nil, &LoadError{Name: name, Err: err}
	}

	a, err := newAsset(name, rs)
	if err != nil {
		_ = rs.Close()
		return nil, &LoadError{Name: name, Err: err}
	}

	return a, nil
}

func newAsset(name string, rs io.ReadSeekCloser) (*Asset, error) {
	f, err := wav.ParseHeader(rs)
	if err != nil {
		return nil, err
	}

	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measure stream: %w", err)
	}

	if _, err := rs.Seek(f.DataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to payload: %w", err)
	}

	return &Asset{
		name:   name,
		format: f,
		rs:     rs,
		pos:    f.DataOffset,
		size:   size,
	}, nil
}

func (a *Asset) Name() string            { return a.name }
func (a *Asset) Format() wav.Format      { return a.format }
func (a *Asset) BytesPerFrame() int      { return a.format.BytesPerFrame() }
func (a *Asset) PayloadSize() int64      { return max(a.size-a.format.DataOffset, 0) }
func (a *Asset) Frames() int64           { return a.PayloadSize() / int64(a.BytesPerFrame()) }
func (a *Asset) Duration() time.Duration { return a.format.Duration(a.PayloadSize()) }

// ReadBlock reads up to len(dst) payload bytes. It returns fewer bytes only
// when the end of the stream is reached; that is not an error.
func (a *Asset) ReadBlock(dst []byte) (int, error) {
	a.mustBeOpen()

	n, err := io.ReadFull(a.rs, dst)
	a.pos += int64(n)

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}

	if err != nil {
		return n, fmt.Errorf("read %s: %w", a.name, err)
	}

	return n, nil
}

// Rewind moves the cursor back to the first payload byte.
func (a *Asset) Rewind() error {
	a.mustBeOpen()

	if _, err := a.rs.Seek(a.format.DataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", a.name, err)
	}

	a.pos = a.format.DataOffset

	return nil
}

func (a *Asset) IsAtEnd() bool {
	a.mustBeOpen()

	return a.pos >= a.size
}

// Close releases the stream. Any later read, rewind or end check panics.
func (a *Asset) Close() error {
	if a.closed {
		return nil
	}

	a.closed = true

	if err := a.rs.Close(); err != nil {
		return fmt.Errorf("close %s: %w", a.name, err)
	}

	return nil
}

func (a *Asset) mustBeOpen() {
	if a.closed {
		panic(ErrAssetClosed)
	}
}
