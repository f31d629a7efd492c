// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/ik5/sndmix"
	"github.com/ik5/sndmix/audio"
	"github.com/ik5/sndmix/internal/config"
	"github.com/ik5/sndmix/internal/luabind"
)

// game is a loaded script bound to a mixer. All calls into it happen on the
// game logic goroutine.
type game struct {
	L       *lua.LState
	binding *luabind.Binding
	mixer   *audio.Mixer
	tick    time.Duration
	logger  *zap.Logger
}

func startGame(cfg config.Config, logger *zap.Logger, path string) (*game, error) {
	m, st, err := newEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := &game{
		L:       lua.NewState(),
		binding: luabind.New(m, st, logger.Named("lua")),
		mixer:   m,
		tick:    time.Duration(cfg.Frames) * time.Second / time.Duration(cfg.SampleRate),
		logger:  logger,
	}
	g.binding.Register(g.L)

	if err := g.L.DoFile(path); err != nil {
		g.close()
		return nil, fmt.Errorf("run %s: %w", path, err)
	}

	return g, nil
}

// update advances the script by one tick. It reports whether the script
// defines update().
func (g *game) update() (bool, error) {
	ok, err := g.binding.CallUpdate(g.L, g.tick.Seconds())
	if err != nil {
		return ok, fmt.Errorf("script update: %w", err)
	}

	return ok, nil
}

// idle reports whether a render can end: the last block mixed nothing and
// the script has no update that could start a sound later.
func (g *game) idle() bool {
	return !g.binding.HasUpdate(g.L) && g.mixer.Stats().Voices == 0
}

func (g *game) anyPlaying() bool {
	for _, inst := range g.mixer.Instances() {
		if inst.IsPlaying() {
			return true
		}
	}

	return false
}

func (g *game) close() {
	g.L.Close()

	if err := g.mixer.Close(); err != nil {
		g.logger.Warn("closing mixer", zap.Error(err))
	}
}

// scriptSink runs the script's update between rendered blocks.
type scriptSink struct {
	sndmix.Sink
	g *game
}

func (s scriptSink) WriteBlock(block []int16) error {
	if err := s.Sink.WriteBlock(block); err != nil {
		return err
	}

	_, err := s.g.update()

	return err
}
