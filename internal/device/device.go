// SPDX-License-Identifier: EPL-2.0

// Package device plays a mixer on the system audio output through oto. The
// device pulls from its own goroutine, so this is the push model host: the
// mixer is drained at the device's cadence while game logic keeps changing
// sounds.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"go.uber.org/zap"

	"github.com/ik5/sndmix/audio"
)

// Player owns the oto context. oto allows a single context per process, so
// open at most one Player.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	logger *zap.Logger

	mutex   sync.Mutex
	started bool
}

// Open creates the output context for m at sampleRate. The device buffer is
// sized to two mixer blocks.
func Open(m *audio.Mixer, sampleRate int, logger *zap.Logger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: audio.OutputChannels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   BufferDuration(m.Frames(), sampleRate),
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("create oto context: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(audio.NewStream(m)),
		logger: logger,
	}

	logger.Info("audio output ready",
		zap.Int("sample_rate", sampleRate),
		zap.Int("frames", m.Frames()),
		zap.Duration("buffer", op.BufferSize),
	)

	return p, nil
}

// BufferDuration is the length of two blocks of frames at sampleRate.
func BufferDuration(frames, sampleRate int) time.Duration {
	if frames <= 0 || sampleRate <= 0 {
		return 0
	}

	return time.Duration(2*frames) * time.Second / time.Duration(sampleRate)
}

func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Err reports a device failure, if any.
func (p *Player) Err() error {
	if err := p.player.Err(); err != nil {
		return fmt.Errorf("oto player: %w", err)
	}

	if err := p.ctx.Err(); err != nil {
		return fmt.Errorf("oto context: %w", err)
	}

	return nil
}

func (p *Player) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.started = false

	if err := p.player.Close(); err != nil {
		return fmt.Errorf("close oto player: %w", err)
	}

	if err := p.ctx.Suspend(); err != nil {
		p.logger.Warn("suspend audio output", zap.Error(err))
	}

	return nil
}
