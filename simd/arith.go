// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// Add returns the lane-wise sum a[i] + b[i], wrapping on overflow as the
// 32-bit integer instructions do.
func Add(a, b Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
	return
}

// Mul returns the lane-wise product a[i] * b[i], keeping the low 32 bits.
func Mul(a, b Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
	return
}

// Min returns the lane-wise signed minimum of a and b.
func Min(a, b Vec) (dst Vec) {
	for i := range dst {
		if a[i] <= b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
	return
}

// Max returns the lane-wise signed maximum of a and b.
func Max(a, b Vec) (dst Vec) {
	for i := range dst {
		if a[i] >= b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
	return
}
