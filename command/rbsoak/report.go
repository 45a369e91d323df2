// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/workload"
)

// periodically log the totals of all workloads
type reporter struct {
	log      *logger.L
	interval time.Duration
}

type tally struct {
	inserts    uint64
	removes    uint64
	searches   uint64
	hits       uint64
	violations uint64
}

func newReporter(seconds int) *reporter {
	return &reporter{
		log:      logger.New("report"),
		interval: time.Duration(seconds) * time.Second,
	}
}

// Run - background process, args must be the shared *workload.Totals
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	totals := args.(*workload.Totals)

	log := r.log
	log.Info("starting…")

	cumulative := tally{}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			delta := collect(totals)
			cumulative.add(delta)
			log.Infof("interval: inserts: %d  removes: %d  searches: %d  hits: %d  violations: %d",
				delta.inserts, delta.removes, delta.searches, delta.hits, delta.violations)
		}
	}

	cumulative.add(collect(totals))
	log.Infof("total: inserts: %d  removes: %d  searches: %d  hits: %d  violations: %d",
		cumulative.inserts, cumulative.removes, cumulative.searches, cumulative.hits, cumulative.violations)
	log.Info("stopped")
}

// read and reset the shared counters
func collect(totals *workload.Totals) tally {
	return tally{
		inserts:    totals.Inserts.Swap(),
		removes:    totals.Removes.Swap(),
		searches:   totals.Searches.Swap(),
		hits:       totals.Hits.Swap(),
		violations: totals.Violations.Swap(),
	}
}

func (t *tally) add(d tally) {
	t.inserts += d.inserts
	t.removes += d.removes
	t.searches += d.searches
	t.hits += d.hits
	t.violations += d.violations
}
