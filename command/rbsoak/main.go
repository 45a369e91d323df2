// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/background"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/workload"
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
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	quiet := len(options["quiet"]) > 0
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for invariant failures
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	totals := &workload.Totals{}

	// one tree per process, only the totals are shared
	soakers := make([]*workload.Process, 0, len(theConfiguration.Workloads))
	processes := make(background.Processes, 0, len(theConfiguration.Workloads))
	for _, conf := range theConfiguration.Workloads {
		wlog := logger.New(conf.Name)
		w, err := workload.New(conf, wlog, workload.NewLogReporter(wlog), totals)
		if nil != err {
			log.Criticalf("workload: %q  initialise error: %s", conf.Name, err)
			exitwithstatus.Message("workload: %q  initialise error: %s", conf.Name, err)
		}
		p := workload.NewProcess(w)
		soakers = append(soakers, p)
		processes = append(processes, p)
	}

	log.Infof("starting %d workloads", len(processes))
	workers := background.Start(processes, nil)
	monitor := background.Start(background.Processes{newReporter(theConfiguration.ReportInterval)}, totals)

	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
	case <-workers.Done():
		log.Info("all workloads finished")
		if !quiet {
			fmt.Printf("\nall workloads finished\n")
		}
	}

	log.Info("shutting down…")
	workers.Stop()
	monitor.Stop()

	failed := 0
	for _, p := range soakers {
		result, err := p.Result()
		if nil != err {
			failed += 1
			kind := "reference mismatch"
			if fault.IsErrInvariant(err) {
				kind = "tree invariant"
			}
			log.Errorf("workload: %q  %s failed after: %d operations  error: %s", result.Name, kind, result.Operations, err)
			if !quiet {
				fmt.Printf("%s: FAILED (%s) after %d operations: %s\n", result.Name, kind, result.Operations, err)
			}
			continue
		}
		log.Infof("workload: %q  operations: %d  size: %d  height: %d", result.Name, result.Operations, result.Size, result.Height)
		if !quiet {
			fmt.Printf("%s: ok  operations: %d  size: %d  height: %d  black height: %d  rotations: %d\n",
				result.Name, result.Operations, result.Size, result.Height, result.BlackHeight, result.Rotations)
		}
	}

	if failed > 0 {
		fault.Criticalf("%d of %d workloads failed", failed, len(soakers))
		exitwithstatus.Message("%s: %d of %d workloads failed", program, failed, len(soakers))
	}
}
