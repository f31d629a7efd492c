// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampUnit clamps x to [0, 1]. NaN maps to 0.
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}

	if !(x > 0) {
		return 0
	}

	return x
}

// AddSaturated adds v to acc and clamps the result to the int16 range instead
// of wrapping.
func AddSaturated(acc int16, v int32) int16 {
	sum := int32(acc) + v

	if sum > math.MaxInt16 {
		return math.MaxInt16
	} else if sum < math.MinInt16 {
		return math.MinInt16
	}

	return int16(sum)
}

// U8ToS16 expands an unsigned 8-bit PCM sample to the signed 16-bit range.
// 128 is the silence midpoint.
func U8ToS16(b byte) int16 {
	return int16((int32(b) - 128) * 256)
}
