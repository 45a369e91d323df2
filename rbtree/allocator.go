// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// limit on reclaimed nodes kept by a single tree
const maximumFreeNodes = 256

// allocate a new red node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("rbtree: pool corrupt: %d free nodes but empty list", tree.freeNodes)
		}
		return &Node[K, V]{
			key:    key,
			value:  value,
			colour: Red,
		}
	}
	p := tree.pool
	tree.pool = p.up
	tree.freeNodes -= 1

	p.up = nil // ensure freelist pointer is cleared
	p.key = key
	p.value = value
	p.colour = Red
	return p
}

// reclaim a node and keep it in the pool if there is room
func (tree *Tree[K, V]) freeNode(p *Node[K, V]) {
	clearNode(p)
	if tree.freeNodes >= maximumFreeNodes {
		return
	}
	p.up = tree.pool // use as free list pointer
	tree.pool = p
	tree.freeNodes += 1
}

// drop all links and data so nothing stays reachable through the node
func clearNode[K, V any](p *Node[K, V]) {
	var zeroKey K
	var zeroValue V
	p.child[left] = nil
	p.child[right] = nil
	p.up = nil
	p.key = zeroKey
	p.value = zeroValue
	p.colour = Black
}
