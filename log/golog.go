// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package log

import (
	"io"
	golog "log"
	"sync/atomic"
)

var golevel int32 = int32(Info)

const (
	Ldate         = golog.Ldate
	Ltime         = golog.Ltime
	Lmicroseconds = golog.Lmicroseconds
	Lshortfile    = golog.Lshortfile
	LstdFlags     = Ldate | Ltime
)

// SetFlags sets the output flags for the Go standard logger.
func SetFlags(flag int) {
	golog.SetFlags(flag)
}

// SetOutput sets the output destination for the Go standard logger.
func SetOutput(w io.Writer) {
	golog.SetOutput(w)
}

// SetLevel sets the level of the default outputter. It is safe to call
// while other goroutines log.
func SetLevel(level Level) {
	atomic.StoreInt32(&golevel, int32(level))
}

type gologOutputter struct{}

func (gologOutputter) Level() Level { return Level(atomic.LoadInt32(&golevel)) }

func (o gologOutputter) Output(calldepth int, level Level, s string) error {
	if o.Level() < level {
		return nil
	}
	return golog.Output(calldepth+1, s)
}
