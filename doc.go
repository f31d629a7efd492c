// SPDX-License-Identifier: EPL-2.0

// Package sndmix is the sound runtime of a small game scripting engine.
//
// The engine streams uncompressed PCM WAV assets and mixes any number of
// concurrently playing sounds into fixed size stereo blocks, one per audio
// tick.
//
// # Packages
//
//   - formats/wav parses and writes the canonical 44 byte PCM header
//   - audio holds assets, instances, the registry and the Mixer
//   - utils has the clamping and saturation helpers
//
// # Quick Start
//
//	mixer, _ := audio.NewMixer(1024)
//	defer mixer.Close()
//
//	st := audio.NewFSStorage(os.DirFS("assets"))
//	boom, err := mixer.Load(st, "boom.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	boom.Play()
//
//	f, _ := os.Create("out.wav")
//	sink := sndmix.NewWAVSink(f, 44100)
//	_, err = sndmix.RenderUntilIdle(mixer, 10_000, sink)
//	sink.Close()
//
// # Host Models
//
// A host either calls Mixer.Mix itself once per logic frame (Render and
// RenderUntilIdle do that), or lets the audio device pull bytes through an
// audio.Stream from its own goroutine. The mixer is correct under both.
package sndmix
