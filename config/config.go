// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package config holds the settings of the simdviz server. Settings are
// resolved in three layers, later layers overriding earlier ones:
//
//  1. built-in defaults (Default)
//  2. an optional YAML file (Load)
//  3. command-line flags (RegisterFlags)
//
// A YAML file may set any subset of the fields:
//
//	addr: localhost:8080
//	view_ttl: 30m
//	open_browser: true
//	events: log
//	log_level: debug
//
// The tick period and the sample vectors are fixed by the program and
// cannot be configured.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/eventlog"
	"github.com/grailbio/simdviz/log"
	"gopkg.in/yaml.v3"
)

// MinViewTTL is the shortest accepted view TTL.
const MinViewTTL = time.Second

// Config is the server configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// ViewTTL is how long an idle browser view keeps its playback state.
	ViewTTL time.Duration
	// OpenBrowser opens the visualizer in a browser once listening.
	OpenBrowser bool
	// Events selects the event logger, "nop" or "log".
	Events string
	// LogLevel is one of off, error, info or debug.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     "localhost:8080",
		ViewTTL:  30 * time.Minute,
		Events:   "nop",
		LogLevel: "info",
	}
}

// yamlConfig is the file representation of Config. Pointer fields
// distinguish "absent" from the zero value.
type yamlConfig struct {
	Addr        *string `yaml:"addr"`
	ViewTTL     *string `yaml:"view_ttl"`
	OpenBrowser *bool   `yaml:"open_browser"`
	Events      *string `yaml:"events"`
	LogLevel    *string `yaml:"log_level"`
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults. A missing file is an error: the user asked
// for it explicitly.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.E("reading config file", path, err)
	}
	if err := c.overlay(data); err != nil {
		return c, errors.E(errors.Invalid, "config file", path, err)
	}
	return c, c.Validate()
}

func (c *Config) overlay(data []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return err
	}
	if y.Addr != nil {
		c.Addr = *y.Addr
	}
	if y.ViewTTL != nil {
		d, err := time.ParseDuration(*y.ViewTTL)
		if err != nil {
			return fmt.Errorf("view_ttl: %v", err)
		}
		c.ViewTTL = d
	}
	if y.OpenBrowser != nil {
		c.OpenBrowser = *y.OpenBrowser
	}
	if y.Events != nil {
		c.Events = *y.Events
	}
	if y.LogLevel != nil {
		c.LogLevel = *y.LogLevel
	}
	return nil
}

// RegisterFlags registers flags on fs that override the fields of c. The
// flags' defaults are c's current values, so RegisterFlags should be
// called after Load.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.DurationVar(&c.ViewTTL, "view-ttl", c.ViewTTL, "how long an idle browser view keeps its state")
	fs.BoolVar(&c.OpenBrowser, "browser", c.OpenBrowser, "open the visualizer in a browser")
	fs.StringVar(&c.Events, "events", c.Events, "event logger: nop or log")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: off, error, info or debug")
}

// Validate checks that every field has a usable value.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.E(errors.Invalid, "config: empty listen address")
	}
	if c.ViewTTL < MinViewTTL {
		return errors.E(errors.Invalid, fmt.Sprintf("config: view TTL %v is shorter than %v", c.ViewTTL, MinViewTTL))
	}
	if _, err := eventlog.New(c.Events); err != nil {
		return errors.E("config", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.E(errors.Invalid, "config", err)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, ViewTTL: %v, OpenBrowser: %v, Events: %s, LogLevel: %s}",
		c.Addr, c.ViewTTL, c.OpenBrowser, c.Events, c.LogLevel)
}

// ApplyFlags overlays c with the flags that were explicitly set on parsed,
// a flag set on which RegisterFlags was called. It lets a command parse
// its flags before the configuration file named by one of them is loaded.
func (c *Config) ApplyFlags(parsed *flag.FlagSet) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	c.RegisterFlags(fs)
	var err error
	parsed.Visit(func(f *flag.Flag) {
		if err != nil || fs.Lookup(f.Name) == nil {
			return
		}
		if e := fs.Set(f.Name, f.Value.String()); e != nil {
			err = errors.E(errors.Invalid, "flag -"+f.Name, e)
		}
	})
	if err != nil {
		return err
	}
	return c.Validate()
}
