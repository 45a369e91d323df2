// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - randomised soak test for the red-black tree
//
// A workload owns one tree and a reference multiset of the keys that
// should be in it.  Operations (insert, remove, search) are drawn by
// weight from a seeded random source; every result is compared with
// the reference and the full set of tree invariants is checked at a
// fixed interval.  The first disagreement stops the run.
//
// Trees are not thread safe so each workload must be run from a
// single go routine; only the Totals are shared.
package workload

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/rbtree/workload Reporter
