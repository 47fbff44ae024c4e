// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package view assembles the Frame a page paints for a playback state:
// operands, result, highlighted lane, snippet and description, and the
// operation picker. It is the only place that joins the operation
// registry with the presentation templates.
package view

import (
	"github.com/grailbio/simdviz/must"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/playback"
	"github.com/grailbio/simdviz/simd"
	"github.com/grailbio/simdviz/snippet"
)

// NoHighlight is the Highlight value of a frame in which no lane is
// highlighted.
const NoHighlight = -1

// Lanes is one displayed vector.
type Lanes struct {
	Label  string              `json:"label"`
	Values simd.Vec            `json:"values"`
	Binary *[simd.Width]string `json:"binary,omitempty"`
}

// Choice is one entry of the operation picker.
type Choice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// Group is the picker section of one category.
type Group struct {
	Category op.Category `json:"category"`
	Title    string      `json:"title"`
	Choices  []Choice    `json:"choices"`
}

// Frame is a complete snapshot of a visualizer view.
type Frame struct {
	State       playback.State `json:"state"`
	Name        string         `json:"name"`
	Category    op.Category    `json:"category"`
	Arity       string         `json:"arity"`
	A           Lanes          `json:"a"`
	B           *Lanes         `json:"b,omitempty"`
	Result      Lanes          `json:"result"`
	Highlight   int            `json:"highlight"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Groups      []Group        `json:"groups"`
	// Diagnostic is set when a requested operation was rejected and the
	// view kept its selection.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Build returns the frame for state s with operands a and b. It fails only
// if s names an operation that reg or the snippet templates do not know.
func Build(reg *op.Registry, s playback.State, a, b simd.Vec) (Frame, error) {
	d, err := reg.Lookup(s.Operation)
	if err != nil {
		return Frame{}, err
	}
	code, err := snippet.Render(d, a, b)
	if err != nil {
		return Frame{}, err
	}
	f := Frame{
		State:       s,
		Name:        d.Name,
		Category:    d.Category,
		Arity:       d.Arity.String(),
		A:           lanes("Vector A", a, d.ShowsBinary),
		Result:      lanes("Result", d.Apply(a, b), d.ShowsBinary),
		Highlight:   highlight(s),
		Code:        code,
		Description: snippet.Describe(d),
		Groups:      Groups(reg, s.Operation),
	}
	if d.ShowsVectorB {
		lb := lanes("Vector B", b, d.ShowsBinary)
		f.B = &lb
	}
	return f, nil
}

// Groups returns the operation picker with selected marked.
func Groups(reg *op.Registry, selected string) []Group {
	var groups []Group
	for _, c := range op.Categories() {
		g := Group{Category: c, Title: c.Title()}
		for _, d := range reg.ListByCategory(c) {
			g.Choices = append(g.Choices, Choice{ID: d.ID, Name: d.Name, Selected: d.ID == selected})
		}
		groups = append(groups, g)
	}
	return groups
}

// Highlighted tells whether lane i is highlighted in f.
func (f Frame) Highlighted(i int) bool {
	return f.Highlight == i
}

// highlight returns the lane highlighted in s. A machine at rest
// highlights nothing; a paused run keeps its lane, lane 0 included.
func highlight(s playback.State) int {
	must.Truef(s.Step >= 0 && s.Step < simd.Width, "view: step %d out of range", s.Step)
	if s.AtRest() {
		return NoHighlight
	}
	return s.Step
}

func lanes(label string, v simd.Vec, binary bool) Lanes {
	l := Lanes{Label: label, Values: v}
	if binary {
		b := v.Binary()
		l.Binary = &b
	}
	return l
}
