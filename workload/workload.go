// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

// Workload - a tree, its reference contents and the operation source
type Workload struct {
	conf     Configuration
	log      *logger.L
	reporter Reporter
	totals   *Totals
	limiter  *rate.Limiter
	random   *rand.Rand

	tree      *rbtree.Tree[int64, uint64]
	reference map[int64]int
	size      int
	result    Result
}

// New - create a workload from a validated configuration
func New(conf Configuration, log *logger.L, reporter Reporter, totals *Totals) (*Workload, error) {
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == totals {
		totals = &Totals{}
	}

	w := &Workload{
		conf:      conf,
		log:       log,
		reporter:  reporter,
		totals:    totals,
		random:    rand.New(rand.NewSource(conf.Seed)),
		tree:      rbtree.New[int64, uint64](),
		reference: make(map[int64]int),
		result: Result{
			Name: conf.Name,
		},
	}
	if conf.Rate > 0 {
		w.limiter = rate.NewLimiter(rate.Limit(conf.Rate), conf.Burst)
	}
	return w, nil
}

// Tree - the tree being exercised, only safe to use when not running
func (w *Workload) Tree() *rbtree.Tree[int64, uint64] {
	return w.tree
}

// Run - apply operations until the configured count is reached or
// shutdown is closed, stops at the first violation
func (w *Workload) Run(shutdown <-chan struct{}) (Result, error) {
	w.log.Infof("%s: start: seed: %d  operations: %d  key space: %d  rate: %g",
		w.conf.Name, w.conf.Seed, w.conf.Operations, w.conf.KeySpace, w.conf.Rate)

loop:
	for 0 == w.conf.Operations || w.result.Operations < uint64(w.conf.Operations) {
		select {
		case <-shutdown:
			w.log.Info("shutdown requested")
			break loop
		default:
		}

		if !w.pace(shutdown) {
			break loop
		}

		if err := w.apply(); nil != err {
			return w.fail(err)
		}

		if w.conf.CheckInterval > 0 && 0 == w.result.Operations%uint64(w.conf.CheckInterval) {
			if err := w.check(); nil != err {
				return w.fail(err)
			}
			if nil != w.reporter {
				w.reporter.Progress(w.conf.Name, w.result.Operations, w.size)
			}
		}
	}

	if err := w.check(); nil != err {
		return w.fail(err)
	}

	w.result.Size = w.tree.Count()
	w.result.Height = w.tree.Height()
	w.result.BlackHeight = w.tree.BlackHeight()
	w.result.Rotations = w.tree.Rotations()

	if nil != w.reporter {
		w.reporter.Finished(w.conf.Name, w.result)
	}
	return w.result, nil
}

// wait for the rate limiter, false if shutdown arrived first
func (w *Workload) pace(shutdown <-chan struct{}) bool {
	if nil == w.limiter {
		return true
	}
	r := w.limiter.Reserve()
	if !r.OK() {
		return false
	}
	delay := r.Delay()
	if delay <= 0 {
		return true
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-shutdown:
		r.Cancel()
		return false
	case <-timer.C:
		return true
	}
}

// perform one randomly chosen operation and compare with the reference
func (w *Workload) apply() error {
	key := w.random.Int63n(w.conf.KeySpace)
	n := w.random.Intn(w.conf.InsertWeight + w.conf.RemoveWeight + w.conf.SearchWeight)

	step := w.result.Operations
	w.result.Operations += 1

	switch {
	case n < w.conf.InsertWeight:
		w.tree.Insert(key, step)
		w.reference[key] += 1
		w.size += 1
		w.result.Inserts += 1
		w.totals.Inserts.Increment()

	case n < w.conf.InsertWeight+w.conf.RemoveWeight:
		removed := w.tree.Remove(key)
		w.result.Removes += 1
		w.totals.Removes.Increment()
		if removed != (w.reference[key] > 0) {
			w.log.Errorf("%s: step: %d  remove: %d  returned: %v  reference count: %d",
				w.conf.Name, step, key, removed, w.reference[key])
			return fault.ErrRemoveMismatch
		}
		if !removed {
			w.result.RemoveMisses += 1
			break
		}
		w.reference[key] -= 1
		if 0 == w.reference[key] {
			delete(w.reference, key)
		}
		w.size -= 1

	default:
		node := w.tree.Search(key)
		found := nil != node
		w.result.Searches += 1
		w.totals.Searches.Increment()
		if found != (w.reference[key] > 0) || (found && key != node.Key()) {
			w.log.Errorf("%s: step: %d  search: %d  found: %v  reference count: %d",
				w.conf.Name, step, key, found, w.reference[key])
			return fault.ErrSearchMismatch
		}
		if found {
			w.result.Hits += 1
			w.totals.Hits.Increment()
		}
	}
	return nil
}

// full structural check plus size agreement
func (w *Workload) check() error {
	w.result.Checks += 1
	if err := w.tree.Check(); nil != err {
		return err
	}
	if w.size != w.tree.Count() {
		return fault.ErrCount
	}
	return nil
}

func (w *Workload) fail(err error) (Result, error) {
	w.totals.Violations.Increment()
	w.log.Criticalf("%s: after %d operations: %s", w.conf.Name, w.result.Operations, err)
	if nil != w.reporter {
		w.reporter.Violation(w.conf.Name, err)
	}
	w.result.Size = w.tree.Count()
	return w.result, err
}
