// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tickserve serves axis limits, ticks, labels, and screen
// coordinates over HTTP as JSON. It lets a front end that draws its
// own plots delegate axis layout.
//
// Usage
//
//	tickserve [-http addr] [-config file]
//
// A request to /ticks resolves one axis. Its query parameters are:
//
//	data        comma-separated data values
//	scale       linear, log, or time
//	min, max    requested limits
//	loose       tight, loose, or always
//	ticks       approximate number of major ticks
//	minor       minor intervals per major interval
//	step        major tick interval
//	len         length of the axis in pixels (default 500)
//
// A POST to /ticks may carry a TOML axis configuration in its body,
// which is applied before the query parameters. /config returns the
// server's base configuration as TOML.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/aclements/go-axis/axis"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		flagHttp    = flag.String("http", "localhost:8001", "serve HTTP on `address`")
		flagConfig  = flag.String("config", "", "base axis configuration TOML `file`")
		flagVerbose = flag.Bool("v", false, "log each request")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	base := new(axis.Config)
	if *flagConfig != "" {
		var err error
		base, err = axis.LoadConfig(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
		// Reject a bad base configuration at startup rather than on
		// every request.
		if err := base.Apply(axis.New()); err != nil {
			log.Fatal(err)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/ticks", &ticksHandler{base})
	mux.Handle("/config", &configHandler{base})

	log.WithField("addr", *flagHttp).Info("serving")
	if err := http.ListenAndServe(*flagHttp, mux); err != nil {
		log.Fatal(err)
	}
}
