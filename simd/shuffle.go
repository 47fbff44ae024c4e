// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "github.com/grailbio/simdviz/must"

// Swap64 is the shuffle control that exchanges the low and high lane
// pairs: dst = [a2, a3, a0, a1].
var Swap64 = [Width]int{2, 3, 0, 1}

// AlternateMask is the blend mask that takes odd lanes from the second
// operand: dst = [a0, b1, a2, b3].
const AlternateMask uint8 = 0b1010

// Shuffle gathers lanes of a: dst[i] = a[ctrl[i]]. Every control index
// must be in [0, Width).
func Shuffle(a Vec, ctrl [Width]int) (dst Vec) {
	for i, src := range ctrl {
		must.Truef(src >= 0 && src < Width, "simd.Shuffle: control index %d out of range", src)
		dst[i] = a[src]
	}
	return
}

// Blend selects each lane from a or b: bit i of mask set selects b[i],
// clear selects a[i]. Bits at or above Width are ignored.
func Blend(a, b Vec, mask uint8) (dst Vec) {
	for i := range dst {
		if mask&(1<<uint(i)) != 0 {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
	return
}

// ShiftLanesRight moves every lane one position toward the high end,
// dropping the last lane and filling lane 0 with zero.
func ShiftLanesRight(a Vec) (dst Vec) {
	copy(dst[1:], a[:Width-1])
	return
}

// ShiftLanesLeft moves every lane one position toward the low end,
// dropping lane 0 and filling the last lane with zero.
func ShiftLanesLeft(a Vec) (dst Vec) {
	copy(dst[:Width-1], a[1:])
	return
}

// Reverse returns the lanes of a in reverse order.
func Reverse(a Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[Width-1-i]
	}
	return
}
