// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/sndmix"
	"github.com/ik5/sndmix/internal/config"
)

// maxRender is the default cap for renders that wait for the script to go
// quiet. Scripts with an update function always run to the cap.
const maxRender = 10 * time.Minute

func runRender(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	out := fs.String("o", "out.wav", "output WAV file")
	seconds := fs.Float64("seconds", 0, "length to render; 0 renders until nothing plays")
	limit := fs.Duration("max", maxRender, "cap when -seconds is 0")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("render needs exactly one script")
	}

	g, err := startGame(cfg, logger, fs.Arg(0))
	if err != nil {
		return err
	}
	defer g.close()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	wavSink := sndmix.NewWAVSink(f, cfg.SampleRate)
	sink := scriptSink{Sink: wavSink, g: g}

	var blocks int
	if *seconds > 0 {
		blocks = sndmix.BlocksFor(time.Duration(*seconds*float64(time.Second)), cfg.SampleRate, cfg.Frames)
		err = sndmix.Render(g.mixer, blocks, sink)
	} else {
		blocks, err = sndmix.RenderUntil(g.mixer, sndmix.BlocksFor(*limit, cfg.SampleRate, cfg.Frames), sink, g.idle)
	}

	if cerr := wavSink.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return err
	}

	logger.Info("rendered",
		zap.String("file", *out),
		zap.Int("blocks", blocks),
		zap.Int("sample_rate", cfg.SampleRate),
	)

	return nil
}
