// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd models a 128-bit SIMD register as four signed 32-bit
// lanes and provides the lane kernels the visualizer demonstrates:
// lane-wise arithmetic and bitwise operations, and the structural
// shuffle, blend, shift and permute operations.
//
// The kernels are plain Go loops over a fixed-size array. They are meant to
// show what an instruction does to each lane, not to be fast; nothing in
// this package emits or calls vector instructions. Features reports which
// vector extensions the host CPU has, for display only.
//
// All kernels take their operands by value and return a new Vec, so an
// operand is never modified by a kernel.
package simd
