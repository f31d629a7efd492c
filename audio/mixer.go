// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/ik5/sndmix/utils"
)

// OutputChannels is the channel count of every mixed block.
const OutputChannels = 2

// Mixer owns the registry of loaded sounds and mixes the playing ones into
// fixed size interleaved stereo blocks, once per tick.
//
// Mix may be called from the game logic goroutine (pull model) or from an
// audio device callback running concurrently with it (push model).
type Mixer struct {
	frames int
	master atomic.Uint32 // float32 bits
	reg    *Registry
	logger *zap.Logger

	tick    sync.Mutex // serializes Mix; guards scratch, snap and seen
	scratch []byte
	snap    []*Instance
	seen    []control // state of snap[i] when the tick started

	ticks  atomic.Uint64
	voices atomic.Int32
}

type Option func(*Mixer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Mixer) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithMasterVolume(v float32) Option {
	return func(m *Mixer) { m.SetMasterVolume(v) }
}

// NewMixer creates a mixer producing blocks of frames stereo frames. The
// block size is fixed for the life of the mixer.
func NewMixer(frames int, opts ...Option) (*Mixer, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, frames)
	}

	m := &Mixer{
		frames:  frames,
		reg:     NewRegistry(),
		logger:  zap.NewNop(),
		scratch: make([]byte, frames*OutputChannels*2),
	}
	m.master.Store(math.Float32bits(1))

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Frames is the number of stereo frames per block.
func (m *Mixer) Frames() int { return m.frames }

// BlockSize is the number of int16 samples Mix expects.
func (m *Mixer) BlockSize() int { return m.frames * OutputChannels }

func (m *Mixer) SetMasterVolume(v float32) {
	m.master.Store(math.Float32bits(utils.ClampUnit(v)))
}

func (m *Mixer) MasterVolume() float32 {
	return math.Float32frombits(m.master.Load())
}

// Load opens name through st and registers a new stopped instance for it.
func (m *Mixer) Load(st Storage, name string) (*Instance, error) {
	a, err := OpenAsset(st, name)
	if err != nil {
		m.logger.Warn("sound load failed", zap.String("sound", name), zap.Error(err))
		return nil, err
	}

	if len(m.scratch)%a.BytesPerFrame() != 0 {
		_ = a.Close()
		err := &LoadError{Name: name, Err: ErrMisalignedFormat}
		m.logger.Warn("sound load failed", zap.String("sound", name), zap.Error(err))

		return nil, err
	}

	inst := newInstance(a)
	m.reg.Add(inst)

	m.logger.Debug("sound loaded",
		zap.String("sound", name),
		zap.Stringer("id", inst.id),
		zap.Stringer("format", inst.format),
		zap.Duration("duration", inst.duration),
	)

	return inst, nil
}

// Unload removes inst from the mixer and closes its stream. A mix in
// progress that already picked inst up finishes its read first.
func (m *Mixer) Unload(inst *Instance) error {
	if !m.reg.Remove(inst) {
		return ErrNotRegistered
	}

	if err := inst.release(); err != nil {
		m.logger.Warn("sound close failed", zap.String("sound", inst.name), zap.Error(err))
		return err
	}

	m.logger.Debug("sound unloaded", zap.String("sound", inst.name), zap.Stringer("id", inst.id))

	return nil
}

// Close unloads every instance. The first close error is returned.
func (m *Mixer) Close() error {
	var first error

	for _, inst := range m.reg.Snapshot(nil) {
		if err := m.Unload(inst); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Instances returns the registered instances in load order.
func (m *Mixer) Instances() []*Instance {
	return m.reg.Snapshot(nil)
}

func (m *Mixer) Registry() *Registry { return m.reg }

func (m *Mixer) StopAll() {
	for _, inst := range m.reg.Snapshot(nil) {
		inst.Stop()
	}
}

type Stats struct {
	Ticks  uint64
	Voices int // instances that produced a block in the last tick
	Sounds int
}

func (m *Mixer) Stats() Stats {
	return Stats{
		Ticks:  m.ticks.Load(),
		Voices: int(m.voices.Load()),
		Sounds: m.reg.Len(),
	}
}

// Mix fills out with the next block. out must hold exactly BlockSize
// samples. It is zeroed first, so a mixer with nothing playing yields
// silence. Failing sounds are stopped and skipped; they never fail the tick.
//
// The set of sounds and which of them are playing is captured once, before
// any sound is mixed, so a Play or Pause that lands during the tick takes
// effect on the next one. A Stop landing during the tick silences the sound
// if the mixer has not read it yet.
func (m *Mixer) Mix(out []int16) error {
	if len(out) != m.BlockSize() {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidDstSize, len(out), m.BlockSize())
	}

	m.tick.Lock()
	defer m.tick.Unlock()

	clear(out)

	m.snap = m.reg.Snapshot(m.snap[:0])
	m.seen = m.seen[:0]
	for _, inst := range m.snap {
		m.seen = append(m.seen, control(inst.ctl.Load()))
	}

	master := m.MasterVolume()

	voices := 0
	for i, inst := range m.snap {
		if m.mixInstance(inst, m.seen[i], out, master) {
			voices++
		}
	}

	clear(m.snap)
	m.voices.Store(int32(voices))
	m.ticks.Add(1)

	return nil
}

func (m *Mixer) mixInstance(inst *Instance, seen control, out []int16, master float32) (mixed bool) {
	if seen.state() != Playing {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("sound failed during mix, stopping it",
				zap.String("sound", inst.name),
				zap.Stringer("id", inst.id),
				zap.Any("panic", r),
			)
			inst.Stop()
			mixed = false
		}
	}()

	bpf := inst.format.BytesPerFrame()

	n, exhausted, err := inst.pull(m.scratch, m.frames*bpf, seen)
	if err != nil {
		m.logger.Error("sound read failed, stopping it",
			zap.String("sound", inst.name),
			zap.Stringer("id", inst.id),
			zap.Error(err),
		)
	}

	if frames := n / bpf; frames > 0 {
		if gain := inst.Volume() * master; gain > 0 {
			accumulate(out, m.scratch, inst.format, frames, gain)
		}
	}

	if exhausted && err == nil {
		if ce := m.logger.Check(zap.DebugLevel, "sound reached end of stream"); ce != nil {
			ce.Write(zap.String("sound", inst.name), zap.Bool("loop", inst.Loop()))
		}
	}

	return n > 0
}
