// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors_test

import (
	"context"
	goerrors "errors"
	"os"
	"testing"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/testutil/expect"
)

func TestError(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	e1 := errors.E(errors.NotExist, "opening file", err)
	expect.EQ(t, e1.Error(), "opening file: resource does not exist: open /dev/notexist: no such file or directory")
	e2 := errors.E(err)
	expect.EQ(t, e2.Error(), "resource does not exist: open /dev/notexist: no such file or directory")
	for _, e := range []error{e1, e2} {
		expect.True(t, errors.Is(errors.NotExist, e))
	}
}

func TestErrorChaining(t *testing.T) {
	err := errors.E(errors.NotExist, "unknown operation", `"avg"`)
	err = errors.E("select", err)
	expect.EQ(t, err.Error(), "select: resource does not exist:\n\tunknown operation \"avg\"")
	expect.True(t, errors.Is(errors.NotExist, err))
}

func TestIs(t *testing.T) {
	for _, c := range []struct {
		err  error
		kind errors.Kind
		want bool
	}{
		{nil, errors.NotExist, false},
		{goerrors.New("plain"), errors.NotExist, false},
		{errors.E(context.Canceled), errors.Canceled, true},
		{errors.E(errors.Invalid, "bad width"), errors.Invalid, true},
		{errors.E(errors.Invalid, "bad width"), errors.NotExist, false},
		{errors.E("outer", errors.E(errors.Precondition, "inner")), errors.Precondition, true},
	} {
		expect.EQ(t, errors.Is(c.kind, c.err), c.want)
	}
}

func TestBadArgument(t *testing.T) {
	err := errors.E(errors.NotExist, 3.14)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.HasSubstr(t, err.Error(), "float64")
}

func TestMatch(t *testing.T) {
	err := errors.E(errors.NotExist, "unknown operation", errors.E(errors.Invalid, "empty id"))
	expect.True(t, errors.Match(errors.E(errors.NotExist), err))
	expect.False(t, errors.Match(errors.E(errors.Invalid), err))
	expect.True(t, errors.Match(errors.E(errors.NotExist, "unknown operation", errors.E(errors.Invalid, "empty id")), err))
}

func TestUnwrap(t *testing.T) {
	err := errors.E(errors.Canceled, "waiting for tick", context.Canceled)
	expect.True(t, goerrors.Is(err, context.Canceled))
}
