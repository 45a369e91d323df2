// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/counter"
)

// Reporter - receives the progress of a workload
type Reporter interface {
	Progress(name string, operations uint64, size int)
	Violation(name string, err error)
	Finished(name string, result Result)
}

// Totals - counters shared by all running workloads
type Totals struct {
	Inserts    counter.Counter
	Removes    counter.Counter
	Searches   counter.Counter
	Hits       counter.Counter
	Violations counter.Counter
}

// Result - summary of a finished workload
type Result struct {
	Name         string `json:"name"`
	Operations   uint64 `json:"operations"`
	Inserts      uint64 `json:"inserts"`
	Removes      uint64 `json:"removes"`
	RemoveMisses uint64 `json:"remove_misses"`
	Searches     uint64 `json:"searches"`
	Hits         uint64 `json:"hits"`
	Checks       uint64 `json:"checks"`
	Size         int    `json:"size"`
	Height       int    `json:"height"`
	BlackHeight  int    `json:"black_height"`
	Rotations    uint64 `json:"rotations"`
}

type logReporter struct {
	log *logger.L
}

// NewLogReporter - a reporter that writes to a logger channel
func NewLogReporter(log *logger.L) Reporter {
	return &logReporter{
		log: log,
	}
}

func (r *logReporter) Progress(name string, operations uint64, size int) {
	r.log.Debugf("%s: operations: %d  size: %d", name, operations, size)
}

func (r *logReporter) Violation(name string, err error) {
	r.log.Criticalf("%s: violation: %s", name, err)
}

func (r *logReporter) Finished(name string, result Result) {
	r.log.Infof("%s: finished: operations: %d  size: %d  height: %d  black height: %d  rotations: %d",
		name, result.Operations, result.Size, result.Height, result.BlackHeight, result.Rotations)
	r.log.Infof("%s: inserts: %d  removes: %d (misses: %d)  searches: %d (hits: %d)  checks: %d",
		name, result.Inserts, result.Removes, result.RemoveMisses, result.Searches, result.Hits, result.Checks)
}
