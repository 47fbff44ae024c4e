// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package eventlog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/log"
)

// TestMarshal verifies that marshal behaves properly in both success and
// failure cases. For success cases, it roundtrips the marshaled string and
// verifies the result. For failure cases, it checks for expected error
// messages.
func TestMarshal(t *testing.T) {
	for _, c := range []struct {
		name       string
		fieldPairs []interface{}
		// errNeedle is "" if we expect no error. Otherwise, it is a string that
		// we expect to see in the resulting err.Error().
		errNeedle string
	}{
		{"no fields", []interface{}{}, ""},
		{"simple", []interface{}{"operation", "xor"}, ""},
		{"mixed value types", []interface{}{"operation", "add", "step", 2, "running", true}, ""},
		{"odd field pairs", []interface{}{"operation", "add", "step"}, "even"},
		{"non-string key", []interface{}{0, "add"}, "string"},
		{"duplicate keys", []interface{}{"view", "a", "view", "b"}, "duplicate"},
		{"reserved key", []interface{}{"eventType", "x"}, "reserved"},
	} {
		t.Run(c.name, func(t *testing.T) {
			s, err := marshal("playbackToggled", c.fieldPairs)
			if c.errNeedle != "" {
				if err == nil || !strings.Contains(err.Error(), c.errNeedle) {
					t.Fatalf("got %v, want error containing %q", err, c.errNeedle)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var m map[string]interface{}
			if err := json.Unmarshal([]byte(s), &m); err != nil {
				t.Fatal(err)
			}
			if got, want := m[eventTypeFieldKey], "playbackToggled"; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
			if got, want := len(m), len(c.fieldPairs)/2+1; got != want {
				t.Errorf("got %d members, want %d", got, want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []string{"", "nop"} {
		e, err := New(kind)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := e.(Nop); !ok {
			t.Errorf("New(%q) = %T, want Nop", kind, e)
		}
	}
	e, err := New("log")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := e, Eventer(Log(log.Info)); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := New("cloudwatch"); !errors.Is(errors.Invalid, err) {
		t.Errorf("expected Invalid, got %v", err)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Event("viewCreated", "view", "v1")
	r.Event("operationSelected", "view", "v1", "operation", "min")
	r.Event("bad", "view")
	if got, want := strings.Join(r.Types(), ","), "viewCreated,operationSelected"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := r.Events()[1].Fields["operation"], "min"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
