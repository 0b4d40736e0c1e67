// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "notation", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "find", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "numeric", HasArg: getoptions.NO_ARGUMENT, Short: 'N'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--notation=infix|prefix|postfix] [--find=VALUE] [--numeric] [--print] [--json] [value...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	var theConfiguration *Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		theConfiguration = defaultConfiguration(filepath.Join(os.TempDir(), "avldemo"))
		if err := os.MkdirAll(theConfiguration.DataDirectory, 0700); nil != err {
			exitwithstatus.Message("%s: cannot create: %q  error: %s", program, theConfiguration.DataDirectory, err)
		}
		if err := finishConfiguration(theConfiguration); nil != err {
			exitwithstatus.Message("%s: configuration error: %s", program, err)
		}
	}

	verbose := len(options["verbose"]) > 0
	if nil == theConfiguration.Logging.Levels {
		theConfiguration.Logging.Levels = map[string]string{}
	}
	if verbose {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels["main"] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Info("starting…")
	log.Debugf("configuration: %+v", theConfiguration)

	// command-line options override the configuration
	numeric := len(options["numeric"]) > 0
	if len(options["notation"]) > 0 {
		theConfiguration.Notation = options["notation"][0]
	}
	if len(options["find"]) > 0 {
		theConfiguration.Find, err = findValue(options["find"][0], numeric)
		if nil != err {
			exitwithstatus.Message("%s: find value: %q  error: %s", program, options["find"][0], err)
		}
	}

	notations, err := selectNotations(theConfiguration.Notation)
	if nil != err {
		exitwithstatus.Message("%s: notation: %q  error: %s", program, theConfiguration.Notation, err)
	}

	var source interface{}
	switch {
	case len(arguments) > 0:
		source, err = argumentValues(arguments, numeric)
		if nil != err {
			exitwithstatus.Message("%s: numeric argument error: %s", program, err)
		}
	case nil != theConfiguration.Values:
		source = normaliseValues(theConfiguration.Values)
	default:
		source = defaultValues
	}
	log.Infof("source: %v", source)

	tree, err := avl.FromArray(source)
	if nil != err {
		fault.Criticalf("build tree from: %v  error: %s", source, err)
		exitwithstatus.Message("%s: cannot build tree: %s", program, err)
	}

	r, err := makeReport(tree, notations, theConfiguration.Find)
	if nil != err {
		log.Errorf("report error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
	log.Infof("count: %d  depth: %d  metrics: %s", r.Count, r.Depth, r.Metrics)

	if len(options["json"]) > 0 {
		printJson(os.Stdout, "", r)
	} else {
		printText(os.Stdout, r)
	}

	if len(options["print"]) > 0 {
		tree.Print(os.Stdout, verbose)
	}

	log.Info("finished")
}
