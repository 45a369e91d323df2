// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with parent pointers to
// allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Every insert and delete first makes the ordinary binary search
// tree change and then runs a fixup that restores the colouring
// rules by recolouring and rotation:
//
//  1. the root is black
//  2. a red node never has a red child
//  3. every path from a node down to an empty position passes
//     through the same number of black nodes
//
// so the height stays below 2·log₂(n+1).
//
// Keys need not be unique.  An insert of a key equal to one already
// present always adds a new node: the placement walk sends equal keys
// to the right, so the new node follows the existing ones in key
// order.  Delete moves the successor node rather than copying
// its data, so node handles stay valid for every key still in the
// tree and the previous node can be deleted during iteration.
package rbtree
