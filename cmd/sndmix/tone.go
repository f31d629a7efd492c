// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/ik5/sndmix/formats/wav"
	"github.com/ik5/sndmix/utils"
)

// runTone writes a sine wave test asset in any supported layout.
func runTone(args []string) error {
	fs := flag.NewFlagSet("tone", flag.ContinueOnError)
	out := fs.String("o", "tone.wav", "output WAV file")
	channels := fs.Int("channels", 1, "1 or 2")
	bits := fs.Int("bits", 16, "8 or 16")
	freq := fs.Float64("freq", 440, "frequency in Hz")
	seconds := fs.Float64("seconds", 1, "length")
	rate := fs.Int("rate", 44100, "sample rate")
	level := fs.Float64("level", 0.5, "peak amplitude in [0, 1]")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seconds <= 0 || *rate <= 0 {
		return errors.New("tone needs a positive -seconds and -rate")
	}

	f := wav.Format{Channels: *channels, BitsPerSample: *bits, SampleRate: *rate}
	if err := f.Validate(); err != nil {
		return err
	}

	payload := sine(f, *freq, *seconds, *level)

	file, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := wav.WritePCM(w, f, payload); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", *out, err)
	}

	return nil
}

// sine renders a tone with peak amplitude level, clamped to [0, 1].
func sine(f wav.Format, freq, seconds, level float64) []byte {
	level = float64(utils.ClampUnit(float32(level)))
	frames := max(int(seconds*float64(f.SampleRate)), 0)
	payload := make([]byte, 0, frames*f.BytesPerFrame())

	for i := range frames {
		v := level * math.Sin(2*math.Pi*freq*float64(i)/float64(f.SampleRate))

		for range f.Channels {
			if f.BitsPerSample == 8 {
				payload = append(payload, byte(128+int(math.Round(v*127))))
			} else {
				s := int16(math.Round(v * math.MaxInt16))
				payload = append(payload, byte(s), byte(uint16(s)>>8))
			}
		}
	}

	return payload
}
