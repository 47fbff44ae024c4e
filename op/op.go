// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package op defines the registry of vector operations shown by the
// visualizer. A Definition binds an identifier to a display name, a
// category and a pure lane transform; presentation (intrinsic names,
// code snippets, descriptions) lives in package snippet.
package op

import (
	"fmt"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/simd"
)

// Category groups operations for display. It carries no semantics.
type Category string

const (
	Basic    Category = "basic"
	Bitwise  Category = "bitwise"
	Advanced Category = "advanced"
)

// Categories returns the fixed set of categories in display order.
func Categories() []Category {
	return []Category{Basic, Bitwise, Advanced}
}

// Title returns the heading used for c in the operation picker.
func (c Category) Title() string {
	switch c {
	case Basic:
		return "Basic Operations"
	case Bitwise:
		return "Bitwise Operations"
	case Advanced:
		return "Advanced Operations"
	}
	return string(c)
}

// Arity is the number of vector operands a transform consumes.
type Arity int

const (
	Unary  Arity = 1
	Binary Arity = 2
)

func (a Arity) String() string {
	switch a {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

// Transform computes a result vector from the operands. Unary transforms
// ignore b.
type Transform func(a, b simd.Vec) simd.Vec

// Definition describes one registered operation. Definitions are
// immutable once registered.
type Definition struct {
	// ID is the unique key of the operation, e.g. "shift_left".
	ID string
	// Name is the human-readable label, e.g. "Shift Left".
	Name string
	Category Category
	Arity    Arity
	// ShowsVectorB tells whether the second operand is displayed. It is
	// not implied by Arity: blend reads both operands through a fixed mask.
	ShowsVectorB bool
	// ShowsBinary tells whether lanes are also displayed in binary.
	ShowsBinary bool
	Transform   Transform
}

// Apply runs d's transform on a and b.
func (d *Definition) Apply(a, b simd.Vec) simd.Vec {
	return d.Transform(a, b)
}

// IsUnknownOperation tells whether err reports an unregistered operation
// identifier.
func IsUnknownOperation(err error) bool {
	return errors.Is(errors.NotExist, err)
}

func unknown(id string) error {
	return errors.E(errors.NotExist, fmt.Sprintf("unknown operation %q", id))
}
