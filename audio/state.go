// SPDX-License-Identifier: EPL-2.0

package audio

// State is the playback state of an Instance.
type State uint8

const (
	Stopped State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// The control word packs the state into the low byte and a change counter
// into the rest. Every user transition bumps the counter, so the mixer can
// stop an exhausted sound with a single compare-and-swap that fails if the
// sound was restarted in the meantime.
type control uint64

func makeControl(gen uint64, s State) control { return control(gen<<8 | uint64(s)) }

func (c control) state() State { return State(c & 0xff) }
func (c control) gen() uint64  { return uint64(c >> 8) }
