// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/sndmix/audio"
	"github.com/ik5/sndmix/formats/wav"
)

func TestSine_Layouts(t *testing.T) {
	t.Parallel()

	for _, f := range []wav.Format{
		{Channels: 1, BitsPerSample: 8, SampleRate: 1000},
		{Channels: 2, BitsPerSample: 16, SampleRate: 1000},
	} {
		payload := sine(f, 250, 0.5, 1)

		if len(payload) != 500*f.BytesPerFrame() {
			t.Errorf("%v: payload %d bytes, want %d", f, len(payload), 500*f.BytesPerFrame())
		}

		// A quarter period in, the wave is at its peak.
		peak := payload[f.BytesPerFrame() : 2*f.BytesPerFrame()]
		if f.BitsPerSample == 8 && peak[0] != 255 {
			t.Errorf("8-bit peak = %d, want 255", peak[0])
		}

		if f.BitsPerSample == 16 && (peak[0] != 0xff || peak[1] != 0x7f) {
			t.Errorf("16-bit peak = %v, want [255 127]", peak[:2])
		}
	}
}

func TestRunTone_Loads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "beep.wav")

	if err := runTone([]string{"-o", out, "-channels", "2", "-bits", "8", "-seconds", "0.1", "-rate", "8000"}); err != nil {
		t.Fatalf("runTone() error = %v", err)
	}

	m, err := audio.NewMixer(256)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	inst, err := m.Load(audio.NewFSStorage(os.DirFS(dir)), "beep.wav")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f := inst.Format(); f.Channels != 2 || f.BitsPerSample != 8 || f.SampleRate != 8000 {
		t.Errorf("Format() = %v", f)
	}
}

func TestRunTone_RejectsLayout(t *testing.T) {
	t.Parallel()

	if err := runTone([]string{"-o", filepath.Join(t.TempDir(), "x.wav"), "-bits", "24"}); err == nil {
		t.Error("runTone() accepted 24-bit output")
	}
}

func TestSine_ClampsLevel(t *testing.T) {
	t.Parallel()

	f := wav.Format{Channels: 1, BitsPerSample: 16, SampleRate: 1000}
	loud := sine(f, 250, 0.01, 2)
	full := sine(f, 250, 0.01, 1)

	if string(loud) != string(full) {
		t.Errorf("level 2 = %v, want the level 1 wave %v", loud, full)
	}

	u8 := wav.Format{Channels: 1, BitsPerSample: 8, SampleRate: 1000}
	if p := sine(u8, 250, 0.01, 3); p[1] != 255 || p[3] != 1 {
		t.Errorf("8-bit peaks = %d, %d, want 255, 1", p[1], p[3])
	}

	if p := sine(f, 250, -1, 1); len(p) != 0 {
		t.Errorf("negative length rendered %d bytes", len(p))
	}
}

func TestRunTone_RejectsLength(t *testing.T) {
	t.Parallel()

	for _, seconds := range []string{"0", "-1"} {
		out := filepath.Join(t.TempDir(), "x.wav")
		if err := runTone([]string{"-o", out, "-seconds", seconds}); err == nil {
			t.Errorf("runTone(-seconds %s) accepted", seconds)
		}

		if _, err := os.Stat(out); err == nil {
			t.Errorf("runTone(-seconds %s) wrote a file", seconds)
		}
	}
}
