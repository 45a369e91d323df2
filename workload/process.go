// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

// Process - runs a workload as a background process
type Process struct {
	workload *Workload
	result   Result
	err      error
}

// NewProcess - wrap a workload for background.Start
func NewProcess(w *Workload) *Process {
	return &Process{
		workload: w,
	}
}

// Run - background.Process interface, the args are not used
func (p *Process) Run(args interface{}, shutdown <-chan struct{}) {
	p.result, p.err = p.workload.Run(shutdown)
}

// Result - outcome of the run, only valid once the background
// process has finished
func (p *Process) Result() (Result, error) {
	return p.result, p.err
}
