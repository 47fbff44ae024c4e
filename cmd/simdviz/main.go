// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simdviz serves an interactive visualizer of 4-lane SIMD integer
// operations, and prints the same operations on the terminal.
//
//	simdviz serve [-addr host:port] [-config file.yaml] [-browser]
//	simdviz list
//	simdviz eval <operation>
//	simdviz version
package main

import (
	"flag"

	"github.com/grailbio/simdviz/cmdutil"
	"github.com/grailbio/simdviz/config"
	"v.io/x/lib/cmdline"
)

var (
	serveConfig = config.Default()
	serveFlags  *flag.FlagSet
	configFlag  string
)

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "simdviz",
		Short:    "Visualize SIMD vector operations",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdServe(),
			newCmdList(),
			newCmdEval(),
			cmdutil.CreateVersionCommand("version", "simdviz"),
		},
	}
}

func newCmdServe() *cmdline.Command {
	cmd := &cmdline.Command{
		Runner: cmdutil.RunnerFunc(runServe),
		Name:   "serve",
		Short:  "Serve the visualizer over HTTP",
		Long: `
Serve starts the visualizer web server. Settings are taken from the
built-in defaults, then from the YAML file named by -config, then from
the command line flags that were given explicitly.
`,
	}
	serveConfig.RegisterFlags(&cmd.Flags)
	serveFlags = &cmd.Flags
	cmd.Flags.StringVar(&configFlag, "config", "", "YAML configuration file")
	return cmd
}

func newCmdList() *cmdline.Command {
	return &cmdline.Command{
		Runner: cmdutil.RunnerFunc(runList),
		Name:   "list",
		Short:  "List the operations by category",
	}
}

func newCmdEval() *cmdline.Command {
	return &cmdline.Command{
		Runner:   cmdutil.RunnerFunc(runEval),
		Name:     "eval",
		Short:    "Apply an operation to the sample vectors",
		ArgsName: "<operation>",
	}
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
