// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/log"
	"github.com/grailbio/simdviz/playback"
	"github.com/grailbio/simdviz/view"
)

const streamWriteTimeout = 10 * time.Second

func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.Groups(s.reg, ""))
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	s.writeFrame(w, sess.machine.State())
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	id := r.URL.Query().Get("op")
	st, err := sess.machine.Select(id)
	if err != nil {
		writeError(w, err)
		return
	}
	s.events.Event("operationSelected", "view", sess.id, "operation", id)
	s.writeFrame(w, st)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	st := sess.machine.TogglePlay()
	s.events.Event("playbackToggled", "view", sess.id, "operation", st.Operation, "running", st.Running, "step", st.Step)
	s.writeFrame(w, st)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	st := sess.machine.Reset()
	s.events.Event("playbackReset", "view", sess.id, "operation", st.Operation)
	s.writeFrame(w, st)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "views": s.Views()})
}

// handleStream upgrades the request to a websocket and sends the view's
// current frame followed by a frame for every state change. The stream
// ends when the client goes away or the view is evicted.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, cookie := s.session(r)
	header := http.Header{}
	if cookie != nil {
		header.Add("Set-Cookie", cookie.String())
	}
	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Debug.Printf("server: stream upgrade: %v", err)
		return
	}
	defer conn.Close()

	states, cancel := sess.machine.Subscribe()
	defer cancel()
	// Drain the client side so that close frames are processed.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	send := func(st playback.State) bool {
		f, err := s.frame(st)
		if err != nil {
			log.Error.Printf("server: view %s: %v", sess.id, err)
			return false
		}
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(f); err != nil {
			log.Debug.Printf("server: view %s stream: %v", sess.id, err)
			return false
		}
		return true
	}
	if !send(sess.machine.State()) {
		return
	}
	for {
		select {
		case <-gone:
			return
		case st, ok := <-states:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "view expired"),
					time.Now().Add(streamWriteTimeout))
				return
			}
			if !send(st) {
				return
			}
		}
	}
}

func (s *Server) writeFrame(w http.ResponseWriter, st playback.State) {
	f, err := s.frame(st)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug.Printf("server: writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		log.Error.Printf("server: %v", err)
	}
	writeJSON(w, code, map[string]interface{}{
		"error":   true,
		"message": err.Error(),
		"code":    code,
	})
}

// statusCode maps an error to the HTTP status reported to the client.
func statusCode(err error) int {
	switch {
	case errors.Is(errors.NotExist, err):
		return http.StatusNotFound
	case errors.Is(errors.Invalid, err):
		return http.StatusBadRequest
	case errors.Is(errors.Precondition, err):
		return http.StatusConflict
	case errors.Is(errors.Unavailable, err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
