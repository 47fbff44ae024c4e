// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package snippet_test

import (
	"testing"

	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/snippet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, id string) *op.Definition {
	t.Helper()
	d, err := op.Builtin().Lookup(id)
	require.NoError(t, err)
	return d
}

func TestEveryOperationHasSnippet(t *testing.T) {
	for _, d := range op.Builtin().All() {
		e, err := snippet.Lookup(d.ID)
		require.NoError(t, err, d.ID)
		assert.NotEmpty(t, e.Intrinsic, d.ID)
		assert.NotEmpty(t, snippet.Describe(d), d.ID)
	}
	_, err := snippet.Lookup("nonexistent")
	assert.True(t, op.IsUnknownOperation(err))
}

func TestRenderBinary(t *testing.T) {
	got, err := snippet.Render(lookup(t, "add"), op.SampleA, op.SampleB)
	require.NoError(t, err)
	want := `#include <immintrin.h>

// Load vectors
__m256i a = _mm256_set_epi32(1, 2, 3, 4);
__m256i b = _mm256_set_epi32(5, 6, 7, 8);

// Perform Addition operation
__m256i result = _mm256_add_epi32(a, b);`
	assert.Equal(t, want, got)
}

func TestRenderUnary(t *testing.T) {
	got, err := snippet.Render(lookup(t, "permute"), op.SampleA, op.SampleB)
	require.NoError(t, err)
	want := `#include <immintrin.h>

// Load vectors
__m256i a = _mm256_set_epi32(1, 2, 3, 4);

// Perform Permute operation
__m256i result = _mm256_permute4x64_epi64(a, 0b00011011);`
	assert.Equal(t, want, got)
}

func TestRenderBlendShowsB(t *testing.T) {
	got, err := snippet.Render(lookup(t, "blend"), op.SampleA, op.SampleB)
	require.NoError(t, err)
	assert.Contains(t, got, "__m256i b = _mm256_set_epi32(5, 6, 7, 8);")
	assert.Contains(t, got, "_mm256_blend_epi32(a, b);")
}

func TestRenderUnregistered(t *testing.T) {
	d := &op.Definition{ID: "avg", Name: "Average", Arity: op.Binary}
	_, err := snippet.Render(d, op.SampleA, op.SampleB)
	assert.True(t, op.IsUnknownOperation(err))
}

func TestRenderInvalidArity(t *testing.T) {
	d := *lookup(t, "add")
	d.Arity = 3
	assert.Panics(t, func() { snippet.Render(&d, op.SampleA, op.SampleB) })
}

func TestDescribe(t *testing.T) {
	for _, c := range []struct {
		id, want string
	}{
		{"add", "Performs addition on each pair of elements."},
		{"multiply", "Performs multiplication on each pair of elements."},
		{"xor", "Performs bitwise operation on each pair of elements."},
		{"shift_left", "Shifts all elements left, filling with zeros."},
		{"blend", "Selectively combines elements from two vectors based on a mask."},
	} {
		assert.Equal(t, c.want, snippet.Describe(lookup(t, c.id)), c.id)
	}
}
