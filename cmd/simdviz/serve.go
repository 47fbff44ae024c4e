// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grailbio/simdviz/cmdutil"
	"github.com/grailbio/simdviz/config"
	"github.com/grailbio/simdviz/errors"
	"github.com/grailbio/simdviz/eventlog"
	"github.com/grailbio/simdviz/log"
	"github.com/grailbio/simdviz/must"
	"github.com/grailbio/simdviz/server"
	"github.com/grailbio/simdviz/web/webutil"
	"golang.org/x/sync/errgroup"
	"v.io/x/lib/cmdline"
)

const shutdownTimeout = 5 * time.Second

func runServe(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("serve takes no arguments")
	}
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(serveFlags); err != nil {
		return err
	}
	return serve(context.Background(), cfg)
}

// serve runs the visualizer until ctx is done or the process is
// interrupted.
func serve(ctx context.Context, cfg config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetOutputter(cmdutil.VlogOutputter{Max: level})
	events, err := eventlog.New(cfg.Events)
	if err != nil {
		return err
	}

	srv := server.New(server.Opts{ViewTTL: cfg.ViewTTL, Events: events})
	cmdutil.OnShutdown(srv.Close)
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return errors.E(errors.Unavailable, "listen", cfg.Addr, err)
	}
	httpServer := &http.Server{Handler: srv, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(lis); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Printf("simdviz: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return srv.SweepEvery(ctx, cfg.ViewTTL/2)
	})

	url, err := webutil.LocalURL(lis.Addr().String(), "/visualization")
	must.Nil(err, "listener address")
	log.Printf("simdviz: serving %s (%s)", url, cfg)
	if cfg.OpenBrowser {
		if err := webutil.StartBrowser(url); err != nil {
			log.Error.Printf("simdviz: opening browser: %v", err)
		}
	}
	return g.Wait()
}
