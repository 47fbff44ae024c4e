// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package eventlog records semi-structured events about visualizer
// views, e.g. when a view is created, when an operation is selected and
// when playback starts or stops:
//
//	e.Event("operationSelected", "view", id, "operation", "xor")
//
// Events are meant for downstream analysis of how the visualizer is used;
// they are not a substitute for logging.
package eventlog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/log"
)

// eventTypeFieldKey is the name of the JSON member holding the event type.
// It is a reserved field key.
const eventTypeFieldKey = "eventType"

// Eventer is called to log events.
type Eventer interface {
	// Event logs an event of typ with (key string, value interface{})
	// fields given in fieldPairs as k0, v0, k1, v1, ...kn, vn.
	//
	// The key "eventType" is reserved. Field keys must be unique. Any
	// violation will result in the event being dropped and logged.
	//
	// Implementations must be safe for concurrent use.
	Event(typ string, fieldPairs ...interface{})
}

// New returns the eventer named by kind: "nop" (or empty) disables event
// logging and "log" writes events to the log at level info.
func New(kind string) (Eventer, error) {
	switch kind {
	case "", "nop":
		return Nop{}, nil
	case "log":
		return Log(log.Info), nil
	}
	return nil, errors.E(errors.Invalid, fmt.Sprintf("unknown eventer %q", kind))
}

// Nop is a no-op Eventer.
type Nop struct{}

var _ Eventer = Nop{}

func (Nop) String() string {
	return "disabled"
}

// Event implements Eventer.
func (Nop) Event(_ string, _ ...interface{}) {}

// Log is an Eventer that writes events as JSON to the logger at its level.
type Log log.Level

var _ Eventer = Log(log.Debug)

// Event implements Eventer.
func (l Log) Event(typ string, fieldPairs ...interface{}) {
	s, err := marshal(typ, fieldPairs)
	if err != nil {
		log.Error.Printf("eventlog: dropping %s event: %v", typ, err)
		return
	}
	log.Level(l).Printf("eventlog: %s", s)
}

// Event is an event captured by Recorder.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// Recorder is an Eventer that keeps events in memory. It is intended for
// tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Eventer = (*Recorder)(nil)

// Event implements Eventer.
func (r *Recorder) Event(typ string, fieldPairs ...interface{}) {
	fields, err := fieldMap(fieldPairs)
	if err != nil {
		log.Error.Printf("eventlog: dropping %s event: %v", typ, err)
		return
	}
	r.mu.Lock()
	r.events = append(r.events, Event{typ, fields})
	r.mu.Unlock()
}

// Events returns the events recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Types returns the types of the events recorded so far, in order.
func (r *Recorder) Types() []string {
	var types []string
	for _, e := range r.Events() {
		types = append(types, e.Type)
	}
	return types
}

func fieldMap(fieldPairs []interface{}) (map[string]interface{}, error) {
	if len(fieldPairs)%2 != 0 {
		return nil, fmt.Errorf("len(fieldPairs) must be even; %d is not even", len(fieldPairs))
	}
	fields := make(map[string]interface{})
	for i := 0; i < len(fieldPairs); i += 2 {
		key, isString := fieldPairs[i].(string)
		if !isString {
			return nil, fmt.Errorf("field key at fieldPairs[%d] must be a string: %v", i, fieldPairs[i])
		}
		if key == eventTypeFieldKey {
			return nil, fmt.Errorf("field key at fieldPairs[%d] is '%s'; '%s' is reserved", i, eventTypeFieldKey, eventTypeFieldKey)
		}
		if _, dupKey := fields[key]; dupKey {
			return nil, fmt.Errorf("key %q at fieldPairs[%d] already used; duplicate keys not allowed", key, i)
		}
		fields[key] = fieldPairs[i+1]
	}
	return fields, nil
}

// marshal marshals event information into a JSON object string.
func marshal(typ string, fieldPairs []interface{}) (string, error) {
	fields, err := fieldMap(fieldPairs)
	if err != nil {
		return "", err
	}
	fields[eventTypeFieldKey] = typ
	bs, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("error marshaling fields to JSON: %v", err)
	}
	return string(bs), nil
}
