// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// rbsoak - long running soak test of the red-black tree
//
// runs a set of randomised workloads in the background, each owning
// its own tree, and checks the tree invariants as they run.  The
// workloads are described in a Lua configuration file, see
// rbsoak.conf.sample.
package main
