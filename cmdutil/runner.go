// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"sync"

	"github.com/grailbio/simdviz/log"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"
)

var (
	runnerOnce sync.Once

	shutdownMu    sync.Mutex
	shutdownFuncs []func()
)

// RunnerFunc is an adapter that turns regular functions into cmdline.Runners.
type RunnerFunc func(*cmdline.Env, []string) error

// Run implements the cmdline.Runner interface method by calling f(env, args).
// It configures vlog and routes package log through it before the first
// run, and runs the registered shutdown callbacks and flushes the log
// afterwards.
func (f RunnerFunc) Run(env *cmdline.Env, args []string) error {
	runnerOnce.Do(func() {
		vlog.ConfigureLibraryLoggerFromFlags()
		log.SetOutputter(VlogOutputter{})
	})
	err := f(env, args)
	RunShutdown()
	vlog.FlushLog()
	return err
}

// OnShutdown registers f to be run when the current command finishes.
// Callbacks run in the reverse order of registration.
func OnShutdown(f func()) {
	shutdownMu.Lock()
	shutdownFuncs = append(shutdownFuncs, f)
	shutdownMu.Unlock()
}

// RunShutdown runs and clears the callbacks registered with OnShutdown.
func RunShutdown() {
	shutdownMu.Lock()
	fns := shutdownFuncs
	shutdownFuncs = nil
	shutdownMu.Unlock()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
