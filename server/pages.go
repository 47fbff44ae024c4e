// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/grailbio/simdviz/log"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/simd"
	"github.com/grailbio/simdviz/view"
)

var blurbs = map[op.Category]string{
	op.Basic:    "Explore fundamental SIMD operations including addition, multiplication, minimum, and maximum.",
	op.Bitwise:  "Visualize how AND, OR, and XOR operations work on multiple data elements simultaneously.",
	op.Advanced: "Master complex operations like shuffle, blend, and vector permutations.",
}

type categoryCard struct {
	Title, Blurb string
}

type landingPage struct {
	Categories []categoryCard
	Features   []string
	Width      int
}

// cell is one lane of a displayed vector.
type cell struct {
	Value     int32
	Binary    string
	Highlight bool
}

type row struct {
	Label string
	Cells []cell
}

type visualizerPage struct {
	view.Frame
	Rows []row
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := landingPage{Features: simd.Features(), Width: simd.Width}
	for _, c := range op.Categories() {
		page.Categories = append(page.Categories, categoryCard{c.Title(), blurbs[c]})
	}
	render(w, landingTemplate, page)
}

// handleVisualization renders the caller's view. An unknown ?op= is
// rejected: the view keeps its selection, which is the default operation
// for a new view, and the page shows a diagnostic.
func (s *Server) handleVisualization(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	var diagnostic string
	if id := r.URL.Query().Get("op"); id != "" {
		_, err := sess.machine.Select(id)
		switch {
		case err == nil:
			s.events.Event("operationSelected", "view", sess.id, "operation", id)
		case op.IsUnknownOperation(err):
			diagnostic = fmt.Sprintf("Unknown operation %q; showing %s instead.", id, sess.machine.State().Operation)
			log.Debug.Printf("server: view %s: %v", sess.id, err)
		default:
			writeError(w, err)
			return
		}
	}
	f, err := s.frame(sess.machine.State())
	if err != nil {
		writeError(w, err)
		return
	}
	f.Diagnostic = diagnostic
	page := visualizerPage{Frame: f}
	page.Rows = append(page.Rows, rowOf(f.A, f.Highlight))
	if f.B != nil {
		page.Rows = append(page.Rows, rowOf(*f.B, f.Highlight))
	}
	page.Rows = append(page.Rows, rowOf(f.Result, f.Highlight))
	render(w, visualizerTemplate, page)
}

func rowOf(l view.Lanes, highlight int) row {
	r := row{Label: l.Label}
	for i, v := range l.Values {
		c := cell{Value: v, Highlight: i == highlight}
		if l.Binary != nil {
			c.Binary = l.Binary[i]
		}
		r.Cells = append(r.Cells, c)
	}
	return r
}

// render executes t into a buffer so that a template error can still be
// reported with a proper status.
func render(w http.ResponseWriter, t *template.Template, data interface{}) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		log.Error.Printf("server: rendering %s: %v", t.Name(), err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = b.WriteTo(w)
}
