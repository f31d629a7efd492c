// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Storage opens named sound resources. Streams are returned positioned at
// offset 0.
type Storage interface {
	Open(name string) (io.ReadSeekCloser, error)
}

// FSStorage serves sounds from an fs.FS, e.g. os.DirFS or an embed.FS.
type FSStorage struct {
	FS fs.FS
}

func NewFSStorage(fsys fs.FS) FSStorage {
	return FSStorage{FS: fsys}
}

func (s FSStorage) Open(name string) (io.ReadSeekCloser, error) {
	f, err := s.FS.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}

		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	rs, ok := f.(io.ReadSeekCloser)
	if !ok {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotSeekable, name)
	}

	return rs, nil
}
