// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package server serves the SIMD visualizer over HTTP. Every browser view
// is identified by a cookie and owns one playback machine; views that are
// idle for longer than the view TTL are evicted and their machines closed.
//
// Routes:
//
//	GET  /                    landing page
//	GET  /visualization       visualizer page; ?op= selects an operation
//	GET  /api/operations      the operation picker as JSON
//	GET  /api/frame           the caller's current frame
//	POST /api/select?op=id    select an operation
//	POST /api/play            start or pause playback
//	POST /api/reset           stop playback and rewind
//	GET  /api/stream          websocket of frames, one per state change
//	GET  /healthz             liveness
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/grailbio/simdviz/eventlog"
	"github.com/grailbio/simdviz/log"
	"github.com/grailbio/simdviz/op"
	"github.com/grailbio/simdviz/playback"
	"github.com/grailbio/simdviz/simd"
	"github.com/grailbio/simdviz/ttlcache"
	"github.com/grailbio/simdviz/view"
)

// CookieName is the name of the cookie that identifies a browser view.
const CookieName = "simdviz-view"

// DefaultViewTTL is used when Opts.ViewTTL is zero.
const DefaultViewTTL = 30 * time.Minute

// Opts configures a Server.
type Opts struct {
	// Registry is the operation registry. op.Builtin() is used if nil.
	Registry *op.Registry
	// Clock and Period are passed to every view's playback machine.
	Clock  playback.Clock
	Period time.Duration
	// ViewTTL is how long an idle view is kept.
	ViewTTL time.Duration
	// Events receives view and playback events. Events are dropped if nil.
	Events eventlog.Eventer
	// A and B are the displayed operands. op.SampleA and op.SampleB are
	// used if both are zero.
	A, B simd.Vec
	// Now is the time source for view expiry. time.Now is used if nil.
	Now func() time.Time
}

// Server is an http.Handler serving the visualizer.
type Server struct {
	reg      *op.Registry
	opts     Opts
	events   eventlog.Eventer
	views    *ttlcache.Cache[string, *session]
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// session is the server side of one browser view.
type session struct {
	id      string
	machine *playback.Machine
}

// New returns a new server.
func New(opts Opts) *Server {
	if opts.Registry == nil {
		opts.Registry = op.Builtin()
	}
	if opts.ViewTTL == 0 {
		opts.ViewTTL = DefaultViewTTL
	}
	if opts.Events == nil {
		opts.Events = eventlog.Nop{}
	}
	if opts.A == (simd.Vec{}) && opts.B == (simd.Vec{}) {
		opts.A, opts.B = op.SampleA, op.SampleB
	}
	s := &Server{
		reg:    opts.Registry,
		opts:   opts,
		events: opts.Events,
		mux:    http.NewServeMux(),
	}
	s.views = ttlcache.New[string, *session](opts.ViewTTL, s.evicted)
	if opts.Now != nil {
		s.views.SetNow(opts.Now)
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /visualization", s.handleVisualization)
	s.mux.HandleFunc("GET /api/operations", s.handleOperations)
	s.mux.HandleFunc("GET /api/frame", s.handleFrame)
	s.mux.HandleFunc("POST /api/select", s.handleSelect)
	s.mux.HandleFunc("POST /api/play", s.handlePlay)
	s.mux.HandleFunc("POST /api/reset", s.handleReset)
	s.mux.HandleFunc("GET /api/stream", s.handleStream)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debug.Printf("server: %s %s", r.Method, r.URL)
	s.mux.ServeHTTP(w, r)
}

// Views returns the number of live views, including expired views that
// have not been swept yet.
func (s *Server) Views() int {
	return s.views.Len()
}

// Sweep evicts expired views and returns how many were evicted.
func (s *Server) Sweep() int {
	return s.views.Sweep()
}

// minSweepInterval bounds the sweep period from below.
const minSweepInterval = 100 * time.Millisecond

// SweepEvery calls Sweep every d until ctx is done. Intervals shorter than
// 100ms are raised to 100ms.
func (s *Server) SweepEvery(ctx context.Context, d time.Duration) error {
	if d < minSweepInterval {
		d = minSweepInterval
	}
	t := time.NewTicker(d)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				log.Debug.Printf("server: evicted %d idle views", n)
			}
		}
	}
}

// Close evicts every view, stopping all playback.
func (s *Server) Close() {
	s.views.Clear()
}

// session returns the caller's view, creating one if the request carries
// no cookie or names an evicted view. The cookie is non-nil if the
// caller must be told the id of a new view.
func (s *Server) session(r *http.Request) (*session, *http.Cookie) {
	if c, err := r.Cookie(CookieName); err == nil {
		if sess, ok := s.views.Get(c.Value); ok {
			return sess, nil
		}
	}
	sess := &session{
		id:      uuid.NewString(),
		machine: playback.New(s.reg, playback.Opts{Clock: s.opts.Clock, Period: s.opts.Period}),
	}
	s.views.Set(sess.id, sess)
	s.events.Event("viewCreated", "view", sess.id)
	log.Debug.Printf("server: created view %s", sess.id)
	return sess, &http.Cookie{
		Name:     CookieName,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionFor is session for handlers that respond through w.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session {
	sess, cookie := s.session(r)
	if cookie != nil {
		http.SetCookie(w, cookie)
	}
	return sess
}

func (s *Server) evicted(id string, sess *session) {
	sess.machine.Close()
	s.events.Event("viewExpired", "view", id)
	log.Debug.Printf("server: view %s expired", id)
}

func (s *Server) frame(st playback.State) (view.Frame, error) {
	return view.Build(s.reg, st, s.opts.A, s.opts.B)
}
