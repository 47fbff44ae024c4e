// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import (
	"fmt"
	"strings"

	"github.com/grailbio/simdviz/errors"
)

// Width is the number of lanes in a Vec.
const Width = 4

// Vec is a vector of Width signed 32-bit lanes.
type Vec [Width]int32

// FromSlice copies s into a Vec. It returns an Invalid error if s does not
// have exactly Width elements.
func FromSlice(s []int32) (Vec, error) {
	var v Vec
	if len(s) != Width {
		return v, errors.E(errors.Invalid, fmt.Sprintf("vector has %d lanes, want %d", len(s), Width))
	}
	copy(v[:], s)
	return v, nil
}

// Slice returns the lanes of v as a newly allocated slice.
func (v Vec) Slice() []int32 {
	s := make([]int32, Width)
	copy(s, v[:])
	return s
}

// String formats v as "[l0 l1 l2 l3]".
func (v Vec) String() string {
	return fmt.Sprint([Width]int32(v))
}

// Join formats the lanes of v separated by sep, e.g. "1, 2, 3, 4".
func (v Vec) Join(sep string) string {
	parts := make([]string, Width)
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, sep)
}

// Binary returns the lanes of v in two's-complement binary, zero-padded to
// at least eight digits.
func (v Vec) Binary() [Width]string {
	var b [Width]string
	for i, x := range v {
		b[i] = fmt.Sprintf("%08b", uint32(x))
	}
	return b
}
