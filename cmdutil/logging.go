// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmdutil provides utility routines for implementing the simdviz
// command line: a cmdline runner that configures logging and runs
// shutdown callbacks, a version command and terminal output helpers.
package cmdutil

import (
	"github.com/grailbio/simdviz/log"
	"v.io/x/lib/vlog"
)

// VlogOutputter implements log.Outputter backed by vlog. Max is the most
// verbose level written; the zero value writes errors and info messages,
// and debug messages when vlog verbosity is at least 1.
type VlogOutputter struct {
	Max log.Level
}

func (o VlogOutputter) Level() log.Level {
	if o.Max >= log.Info && vlog.V(1) {
		return log.Debug
	}
	return o.Max
}

func (o VlogOutputter) Output(calldepth int, level log.Level, s string) error {
	if level > o.Level() {
		return nil
	}
	// In vlog, 0 depth means that the caller's file/line will be used,
	// whereas log uses 1 for the same.
	switch level {
	case log.Off:
	case log.Error:
		vlog.ErrorDepth(calldepth, s)
	default:
		vlog.InfoDepth(calldepth, s)
	}
	return nil
}
