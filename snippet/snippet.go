// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package snippet renders the illustrative AVX2 code and the
// plain-language description shown next to an operation. The output is
// display text only; it is never compiled or executed.
package snippet

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/must"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/simd"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ImmediateControl is the immediate operand shown for single-vector
// operations. It is not derived from the operation's actual lane order.
const ImmediateControl = "0b00011011"

// Entry is the presentation of one operation.
type Entry struct {
	// Intrinsic is the AVX2 intrinsic named in the snippet.
	Intrinsic string
	// Description is the plain-language description. An empty
	// description is derived from the operation's name.
	Description string
}

var entries = map[string]Entry{
	"add":      {Intrinsic: "_mm256_add_epi32"},
	"multiply": {Intrinsic: "_mm256_mul_epi32"},
	"min":      {Intrinsic: "_mm256_min_epi32"},
	"max":      {Intrinsic: "_mm256_max_epi32"},

	"and": {Intrinsic: "_mm256_and_si256", Description: bitwiseDescription},
	"or":  {Intrinsic: "_mm256_or_si256", Description: bitwiseDescription},
	"xor": {Intrinsic: "_mm256_xor_si256", Description: bitwiseDescription},

	"shuffle": {
		Intrinsic:   "_mm256_shuffle_epi32",
		Description: "Rearranges elements within the vector based on an immediate control value.",
	},
	"blend": {
		Intrinsic:   "_mm256_blend_epi32",
		Description: "Selectively combines elements from two vectors based on a mask.",
	},
	"shift_right": {
		Intrinsic:   "_mm256_srli_epi32",
		Description: "Shifts all elements right, filling with zeros.",
	},
	"shift_left": {
		Intrinsic:   "_mm256_slli_epi32",
		Description: "Shifts all elements left, filling with zeros.",
	},
	"permute": {
		Intrinsic:   "_mm256_permute4x64_epi64",
		Description: "Reorders elements across the entire vector.",
	},
}

const bitwiseDescription = "Performs bitwise operation on each pair of elements."

var lower = cases.Lower(language.English)

// Lookup returns the presentation entry of operation id.
func Lookup(id string) (Entry, error) {
	e, ok := entries[id]
	if !ok {
		return Entry{}, errors.E(errors.NotExist, fmt.Sprintf("no snippet for operation %q", id))
	}
	return e, nil
}

// Describe returns the plain-language description of d.
func Describe(d *op.Definition) string {
	e, err := Lookup(d.ID)
	if err == nil && e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("Performs %s on each pair of elements.", lower.String(d.Name))
}

var codeTemplate = template.Must(template.New("code").Parse(`#include <immintrin.h>

// Load vectors
__m256i a = _mm256_set_epi32({{.A}});
{{if .ShowB}}__m256i b = _mm256_set_epi32({{.B}});
{{end}}
// Perform {{.Name}} operation
__m256i result = {{.Intrinsic}}({{.Args}});`))

// Render returns the illustrative code for d applied to a and b.
func Render(d *op.Definition, a, b simd.Vec) (string, error) {
	e, err := Lookup(d.ID)
	if err != nil {
		return "", err
	}
	var args string
	switch d.Arity {
	case op.Unary:
		args = "a, " + ImmediateControl
	case op.Binary:
		args = "a, b"
	default:
		must.Neverf("snippet: %s has arity %v", d.ID, d.Arity)
	}
	var buf bytes.Buffer
	err = codeTemplate.Execute(&buf, struct {
		A, B, Name, Intrinsic, Args string
		ShowB                       bool
	}{
		A:         a.Join(", "),
		B:         b.Join(", "),
		Name:      d.Name,
		Intrinsic: e.Intrinsic,
		Args:      args,
		ShowB:     d.ShowsVectorB,
	})
	if err != nil {
		return "", errors.E("rendering snippet for", d.ID, err)
	}
	return buf.String(), nil
}
