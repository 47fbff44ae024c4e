// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/grailbio/simdviz/cmdutil"
	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/simd"
	"github.com/grailbio/simdviz/snippet"
	"v.io/x/lib/cmdline"
)

func runList(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("list takes no arguments")
	}
	reg := op.Builtin()
	tw := tabwriter.NewWriter(env.Stdout, 2, 8, 2, ' ', 0)
	for _, c := range op.Categories() {
		fmt.Fprintf(tw, "%s\n", c.Title())
		for _, d := range reg.ListByCategory(c) {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", d.ID, d.Name, d.Arity)
		}
	}
	return tw.Flush()
}

func runEval(env *cmdline.Env, args []string) error {
	if len(args) != 1 {
		return env.UsageErrorf("eval requires exactly one operation")
	}
	reg := op.Builtin()
	d, err := reg.Lookup(args[0])
	if err != nil {
		return errors.E(err, fmt.Sprintf("known operations: %s", strings.Join(reg.IDs(), ", ")))
	}
	a, b := op.SampleA, op.SampleB
	result := d.Apply(a, b)
	row := func(label string, v simd.Vec) {
		if d.ShowsBinary {
			bin := v.Binary()
			fmt.Fprintf(env.Stdout, "%-8s %v  %s\n", label+":", v, strings.Join(bin[:], " "))
			return
		}
		fmt.Fprintf(env.Stdout, "%-8s %v\n", label+":", v)
	}
	fmt.Fprintf(env.Stdout, "%s (%s, %s)\n\n", d.Name, d.Category, d.Arity)
	row("A", a)
	if d.ShowsVectorB {
		row("B", b)
	}
	row("Result", result)
	code, err := snippet.Render(d, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "\n%s\n", code)
	cmdutil.WriteWrappedMessage(env.Stdout, snippet.Describe(d)+"\n")
	return nil
}
