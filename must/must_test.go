// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package must_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/grailbio/simdviz/must"
	"github.com/stretchr/testify/assert"
)

// TestDepth verifies that the depth passed to Func correctly locates the
// caller of the must function.
func TestDepth(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not determine current file")
	}
	saved := must.Func
	defer func() { must.Func = saved }()
	must.Func = func(depth int, v ...interface{}) {
		_, file, _, ok := runtime.Caller(depth)
		if !ok {
			t.Fatal("could not determine caller of Func")
		}
		if file != thisFile {
			t.Errorf("caller at depth %d is '%s'; should be '%s'", depth, file, thisFile)
		}
	}
	must.True(false)
	must.Truef(false, "")
	must.Nil(struct{}{})
	must.Neverf("")
}

func TestDefaultPanics(t *testing.T) {
	lane, width := 4, 4
	assert.PanicsWithValue(t, "lane 4 out of range", func() {
		must.Truef(lane < width, "lane %d out of range", lane)
	})
	assert.NotPanics(t, func() { must.True(true) })
}

func Example() {
	saved := must.Func
	defer func() { must.Func = saved }()
	must.Func = func(depth int, v ...interface{}) {
		fmt.Print(v...)
		fmt.Print("\n")
	}

	must.Nil(errors.New("unexpected condition"))
	must.Nil(nil)
	must.Nil(errors.New("duplicate id"), "registering add")

	must.True(false)
	must.True(true, "something happened")
	must.True(false, "width mismatch")

	// Output:
	// unexpected condition
	// registering add: duplicate id
	// must: assertion failed
	// width mismatch
}
