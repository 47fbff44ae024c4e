// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package webutil has helpers for serving the visualizer to a local
// browser.
package webutil

import (
	"net"
	"net/url"

	"github.com/grailbio/simdviz/errors"
)

// StartBrowser tries to open url in the user's browser. It does not wait
// for the browser to exit.
func StartBrowser(url string) error {
	if err := browserCommand(url).Start(); err != nil {
		return errors.E(errors.Unavailable, "starting browser", err)
	}
	return nil
}

// LocalURL returns the http URL of path on a server listening on addr.
// Wildcard and empty hosts are replaced by localhost, so that the URL can
// be opened from the same machine.
func LocalURL(addr, path string) (string, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", errors.E(errors.Invalid, "listen address", addr, err)
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	u := url.URL{Scheme: "http", Host: net.JoinHostPort(host, port), Path: path}
	return u.String(), nil
}
