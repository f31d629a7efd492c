// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/sndmix/formats/wav"
	"github.com/ik5/sndmix/utils"
)

// Instance is a playable sound: an exclusively owned Asset plus playback
// state, loop flag and volume.
//
// Play, Stop, Pause and the setters only touch atomics and never wait for a
// mix in progress. The stream itself is read and rewound by the mixer; a
// rewind requested by Play or Stop is applied before the next read.
type Instance struct {
	id       uuid.UUID
	name     string
	format   wav.Format
	duration time.Duration

	ctl    atomic.Uint64
	loop   atomic.Bool
	volume atomic.Uint32 // float32 bits
	rewind atomic.Bool
	loaded atomic.Bool

	mu    sync.Mutex // guards asset
	asset *Asset     // nil once released
}

func newInstance(a *Asset) *Instance {
	i := &Instance{
		id:       uuid.New(),
		name:     a.Name(),
		format:   a.Format(),
		duration: a.Duration(),
		asset:    a,
	}
	i.volume.Store(math.Float32bits(1))
	i.loaded.Store(true)

	return i
}

func (i *Instance) ID() uuid.UUID           { return i.id }
func (i *Instance) Name() string            { return i.name }
func (i *Instance) Format() wav.Format      { return i.format }
func (i *Instance) Duration() time.Duration { return i.duration }

// Loaded reports whether the instance still owns an open asset.
func (i *Instance) Loaded() bool { return i.loaded.Load() }

func (i *Instance) State() State { return control(i.ctl.Load()).state() }

func (i *Instance) IsPlaying() bool { return i.State() == Playing }

// Play starts the sound from its first payload frame, whatever the current
// state. It does nothing and returns false if the sound is not loaded.
func (i *Instance) Play() bool {
	if !i.loaded.Load() {
		return false
	}

	i.rewind.Store(true)
	i.transition(Playing)

	return true
}

// Stop stops the sound and rewinds it.
func (i *Instance) Stop() {
	i.rewind.Store(true)
	i.transition(Stopped)
}

// Pause holds a playing sound. Play still restarts it from the beginning.
func (i *Instance) Pause() bool {
	for {
		old := control(i.ctl.Load())
		if old.state() != Playing {
			return false
		}

		if i.ctl.CompareAndSwap(uint64(old), uint64(makeControl(old.gen()+1, Paused))) {
			return true
		}
	}
}

func (i *Instance) transition(s State) {
	for {
		old := control(i.ctl.Load())
		if i.ctl.CompareAndSwap(uint64(old), uint64(makeControl(old.gen()+1, s))) {
			return
		}
	}
}

func (i *Instance) SetLoop(loop bool) { i.loop.Store(loop) }
func (i *Instance) Loop() bool        { return i.loop.Load() }
func (i *Instance) IsLooping() bool   { return i.loop.Load() }

// SetVolume sets the instance volume, clamped to [0, 1].
func (i *Instance) SetVolume(v float32) {
	i.volume.Store(math.Float32bits(utils.ClampUnit(v)))
}

func (i *Instance) Volume() float32 {
	return math.Float32frombits(i.volume.Load())
}

// pull reads the next block of at most need bytes into scratch. It runs on
// the tick side only. seen is the control word the caller saw as Playing.
// When the stream runs out the asset is rewound, and unless the sound loops
// it is stopped, provided nobody changed its state since seen.
func (i *Instance) pull(scratch []byte, need int, seen control) (n int, exhausted bool, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.asset == nil {
		return 0, false, nil
	}

	if i.rewind.Swap(false) {
		if err := i.asset.Rewind(); err != nil {
			i.finish(seen)
			return 0, true, err
		}

		// Stopped after the tick captured it; do not replay the first block.
		if cur := control(i.ctl.Load()); cur != seen && cur.state() == Stopped {
			return 0, false, nil
		}
	}

	n, err = i.asset.ReadBlock(scratch[:need])
	if err != nil {
		i.finish(seen)
		return n, true, err
	}

	if n < need || i.asset.IsAtEnd() {
		exhausted = true

		if err := i.asset.Rewind(); err != nil {
			i.finish(seen)
			return n, true, err
		}

		if !i.loop.Load() {
			i.ctl.CompareAndSwap(uint64(seen), uint64(makeControl(seen.gen()+1, Stopped)))
		}
	}

	return n, exhausted, nil
}

// finish stops a sound whose stream failed. The caller holds mu.
func (i *Instance) finish(seen control) {
	if i.ctl.CompareAndSwap(uint64(seen), uint64(makeControl(seen.gen()+1, Stopped))) {
		i.rewind.Store(true)
	}
}

// release stops the instance and closes its asset. Waits for a read of this
// instance in progress, if any.
func (i *Instance) release() error {
	i.loaded.Store(false)
	i.transition(Stopped)

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.asset == nil {
		return nil
	}

	err := i.asset.Close()
	i.asset = nil

	return err
}
