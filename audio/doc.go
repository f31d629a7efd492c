// SPDX-License-Identifier: EPL-2.0

// Package audio is the real-time sound engine: assets, playable instances
// and the block mixer.
//
// # Assets and Instances
//
// An Asset is an open PCM WAV stream positioned at its payload. An Instance
// owns exactly one Asset and adds playback state, a loop flag and a volume.
// Instances are created and registered by Mixer.Load and released by
// Mixer.Unload, which also closes the stream:
//
//	mixer, _ := audio.NewMixer(1024)
//	jump, err := mixer.Load(audio.NewFSStorage(os.DirFS("sfx")), "jump.wav")
//	if err != nil {
//	    // the sound is simply not available
//	}
//	jump.SetVolume(0.8)
//	jump.Play()
//
// Play always restarts from the first frame. Stop rewinds. A sound that runs
// out of data is rewound by the mixer and stopped unless it loops.
//
// # Mixing
//
// Mix fills one fixed size block of interleaved signed 16-bit stereo
// samples:
//
//	out := make([]int16, mixer.BlockSize())
//	for range ticks {
//	    _ = mixer.Mix(out)
//	    sink.Write(out)
//	}
//
// Supported inputs are mono or stereo, 8 or 16 bits. 8-bit samples are
// unsigned with 128 as silence. Mono is duplicated to both channels. Each
// sample is scaled by instance volume times master volume and added with
// saturation, so loud overlaps clip at the int16 limits instead of wrapping.
// There is no resampling: every asset is played at the output rate.
//
// # Concurrency
//
// Mix may run on the game logic goroutine or on a device callback goroutine.
// The registry lock is held only to copy the instance list at the start of
// a tick and to add or remove an instance. Play, Stop, Pause and the volume
// setters are lock free. Stream wraps a Mixer as an io.Reader for devices
// that pull arbitrary byte counts.
package audio
