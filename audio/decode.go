// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	"github.com/ik5/sndmix/formats/wav"
	"github.com/ik5/sndmix/utils"
)

// accumulate decodes the first frames sample-frames of src, scales them by
// gain and adds them with saturation into the interleaved stereo dst. Mono
// input is duplicated to both output channels.
func accumulate(dst []int16, src []byte, f wav.Format, frames int, gain float32) {
	switch {
	case f.Channels == 1 && f.BitsPerSample == 8:
		for i := range frames {
			s := scale(utils.U8ToS16(src[i]), gain)
			o := i << 1
			dst[o] = utils.AddSaturated(dst[o], s)
			dst[o+1] = utils.AddSaturated(dst[o+1], s)
		}
	case f.Channels == 2 && f.BitsPerSample == 8:
		for i := range frames {
			o := i << 1
			dst[o] = utils.AddSaturated(dst[o], scale(utils.U8ToS16(src[o]), gain))
			dst[o+1] = utils.AddSaturated(dst[o+1], scale(utils.U8ToS16(src[o+1]), gain))
		}
	case f.Channels == 1 && f.BitsPerSample == 16:
		for i := range frames {
			s := scale(int16(binary.LittleEndian.Uint16(src[i<<1:])), gain)
			o := i << 1
			dst[o] = utils.AddSaturated(dst[o], s)
			dst[o+1] = utils.AddSaturated(dst[o+1], s)
		}
	case f.Channels == 2 && f.BitsPerSample == 16:
		for i := range frames {
			b := i << 2
			o := i << 1
			l := int16(binary.LittleEndian.Uint16(src[b:]))
			r := int16(binary.LittleEndian.Uint16(src[b+2:]))
			dst[o] = utils.AddSaturated(dst[o], scale(l, gain))
			dst[o+1] = utils.AddSaturated(dst[o+1], scale(r, gain))
		}
	}
}

func scale(s int16, gain float32) int32 {
	if gain == 1 {
		return int32(s)
	}

	return int32(float32(s) * gain)
}
