// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// And returns a[i] & b[i] for every lane.
func And(a, b Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
	return
}

// Or returns a[i] | b[i] for every lane.
func Or(a, b Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
	return
}

// Xor returns a[i] ^ b[i] for every lane.
func Xor(a, b Vec) (dst Vec) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
	return
}
