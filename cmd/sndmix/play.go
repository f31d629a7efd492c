// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/sndmix/internal/config"
	"github.com/ik5/sndmix/internal/device"
)

func runPlay(cfg config.Config, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	seconds := fs.Float64("seconds", 0, "stop after this long; 0 waits until nothing plays")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("play needs exactly one script")
	}

	g, err := startGame(cfg, logger, fs.Arg(0))
	if err != nil {
		return err
	}
	defer g.close()

	out, err := device.Open(g.mixer, cfg.SampleRate, logger.Named("device"))
	if err != nil {
		return err
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(*seconds*float64(time.Second)))
		defer cancel()
	}

	out.Start()

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		hasUpdate, err := g.update()
		if err != nil {
			return err
		}

		if err := out.Err(); err != nil {
			return err
		}

		if !hasUpdate && !g.anyPlaying() {
			logger.Debug("nothing left to play")
			return nil
		}
	}
}
