// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.child[left], p) {
		return false
	}
	return checkup(p.child[right], p)
}

// Check - verify every structural rule of the tree, returning the
// first violation found or nil
func (tree *Tree[K, V]) Check() error {
	if nil == tree.root {
		if 0 != tree.count {
			return fault.ErrCount
		}
		return nil
	}
	if Black != tree.root.colour {
		return fault.ErrRootNotBlack
	}
	if !tree.CheckUp() {
		return fault.ErrParentLink
	}
	if _, err := checkColours(tree.root); nil != err {
		return err
	}

	n := 0
	var previous *Node[K, V]
	for p := range tree.Walk(InOrder) {
		if nil != previous && tree.compare(previous.key, p.key) > 0 {
			return fault.ErrOrdering
		}
		previous = p
		n += 1
	}
	if n != tree.count {
		return fault.ErrCount
	}
	return nil
}

// returns the number of black nodes on every path from p down to an
// empty position, counting p itself
func checkColours[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if Red == p.colour && (Red == colourOf(p.child[left]) || Red == colourOf(p.child[right])) {
		return 0, fault.ErrRedRed
	}
	lh, err := checkColours(p.child[left])
	if nil != err {
		return 0, err
	}
	rh, err := checkColours(p.child[right])
	if nil != err {
		return 0, err
	}
	if lh != rh {
		return 0, fault.ErrBlackHeight
	}
	if Black == p.colour {
		lh += 1
	}
	return lh, nil
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	lh := height(p.child[left])
	rh := height(p.child[right])
	if rh > lh {
		return 1 + rh
	}
	return 1 + lh
}

// BlackHeight - black nodes below the root on any path to an empty
// position, zero for an empty tree
func (tree *Tree[K, V]) BlackHeight() int {
	h := 0
	for p := tree.root.first(); nil != p && p != tree.root; p = p.up {
		if Black == p.colour {
			h += 1
		}
	}
	return h
}
