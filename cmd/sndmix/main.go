// SPDX-License-Identifier: EPL-2.0

// Command sndmix runs sound scripts against the mixer.
//
//	sndmix render [-o out.wav] [-seconds N] [-max D] script.lua
//	sndmix play [-seconds N] script.lua
//	sndmix pad a.wav b.wav ...
//	sndmix tone [-o tone.wav] [-channels 1|2] [-bits 8|16] [-freq Hz] [-seconds N]
//
// Settings come from the environment or a .env file, see internal/config.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/sndmix/audio"
	"github.com/ik5/sndmix/internal/config"
)

const usage = `usage:
  sndmix render [-o out.wav] [-seconds N] [-max D] script.lua
  sndmix play [-seconds N] script.lua
  sndmix pad a.wav b.wav ...
  sndmix tone [-o tone.wav] [-channels 1|2] [-bits 8|16] [-freq Hz] [-seconds N]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	args := os.Args[2:]

	switch os.Args[1] {
	case "render":
		err = runRender(cfg, logger, args)
	case "play":
		err = runPlay(cfg, logger, args)
	case "pad":
		err = runPad(cfg, logger, args)
	case "tone":
		err = runTone(args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("sndmix failed", zap.String("command", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}

// newEngine builds the mixer and the asset storage for cfg.
func newEngine(cfg config.Config, logger *zap.Logger) (*audio.Mixer, audio.Storage, error) {
	m, err := audio.NewMixer(cfg.Frames,
		audio.WithLogger(logger.Named("mixer")),
		audio.WithMasterVolume(cfg.MasterVolume),
	)
	if err != nil {
		return nil, nil, err
	}

	return m, audio.NewFSStorage(os.DirFS(cfg.AssetDir)), nil
}
