// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived go routines that are
// all stopped together
package background

// Process - a background task, Run must return soon after shutdown
// is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for one process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	s []shutdown
}

// Start - start up a set of background processes, all receive the
// same args
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	for i, p := range processes {
		sd := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = sd
		register.s[i].finished = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, sd)
		}(p)
	}
	return register
}

// Stop - signal every process then wait for all of them to return
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, s := range t.s {
		close(s.shutdown)
	}

	for _, s := range t.s {
		<-s.finished
	}
	t.s = nil
}

// Done - channel closed once every process has returned, a process
// may finish on its own before Stop, e.g. after a fixed operation count
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	finished := make([]chan struct{}, len(t.s))
	for i, s := range t.s {
		finished[i] = s.finished
	}
	go func() {
		for _, f := range finished {
			<-f
		}
		close(done)
	}()
	return done
}
