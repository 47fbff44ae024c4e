// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package op

import (
	"sync"

	"github.com/grailbio/simdviz/simd"
)

// The sample operands displayed by the visualizer.
var (
	SampleA = simd.Vec{1, 2, 3, 4}
	SampleB = simd.Vec{5, 6, 7, 8}
)

func binary(id, name string, c Category, f func(a, b simd.Vec) simd.Vec) Definition {
	return Definition{
		ID:           id,
		Name:         name,
		Category:     c,
		Arity:        Binary,
		ShowsVectorB: true,
		ShowsBinary:  c == Bitwise,
		Transform:    f,
	}
}

func unary(id, name string, f func(a simd.Vec) simd.Vec) Definition {
	return Definition{
		ID:        id,
		Name:      name,
		Category:  Advanced,
		Arity:     Unary,
		Transform: func(a, _ simd.Vec) simd.Vec { return f(a) },
	}
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the registry of operations shown by the visualizer.
// The first entry, "add", is the default selection.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = NewRegistry(
			binary("add", "Addition", Basic, simd.Add),
			binary("multiply", "Multiplication", Basic, simd.Mul),
			binary("min", "Minimum", Basic, simd.Min),
			binary("max", "Maximum", Basic, simd.Max),

			binary("and", "Bitwise AND", Bitwise, simd.And),
			binary("or", "Bitwise OR", Bitwise, simd.Or),
			binary("xor", "Bitwise XOR", Bitwise, simd.Xor),

			unary("shuffle", "Shuffle", func(a simd.Vec) simd.Vec {
				return simd.Shuffle(a, simd.Swap64)
			}),
			binary("blend", "Blend", Advanced, func(a, b simd.Vec) simd.Vec {
				return simd.Blend(a, b, simd.AlternateMask)
			}),
			unary("shift_right", "Shift Right", simd.ShiftLanesRight),
			unary("shift_left", "Shift Left", simd.ShiftLanesLeft),
			unary("permute", "Permute", simd.Reverse),
		)
	})
	return builtin
}
