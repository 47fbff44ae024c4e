// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "golang.org/x/sys/cpu"

type feature struct {
	name string
	has  bool
}

// Features returns the names of the vector extensions reported by the host
// CPU, in increasing order of width. The list is empty on hosts where none
// of the known extensions are detected.
func Features() []string {
	all := []feature{
		{"SSE2", cpu.X86.HasSSE2},
		{"SSE4.1", cpu.X86.HasSSE41},
		{"SSE4.2", cpu.X86.HasSSE42},
		{"AVX", cpu.X86.HasAVX},
		{"AVX2", cpu.X86.HasAVX2},
		{"AVX-512F", cpu.X86.HasAVX512F},
		{"NEON", cpu.ARM64.HasASIMD},
		{"SVE", cpu.ARM64.HasSVE},
	}
	var names []string
	for _, f := range all {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
