// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"

	"github.com/bitmark-inc/rbtree/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root      *Node[K, V]
	count     int
	compare   func(a, b K) int
	rotations uint64

	// reclaimed nodes, linked through their up pointers
	pool      *Node[K, V]
	freeNodes int
}

// New - create an initially empty tree ordered by the natural
// ordering of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{
		compare: cmp.Compare[K],
	}
}

// NewFunc - create an initially empty tree ordered by a three way
// compare function returning <0, 0 or >0
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		fault.Panicf("rbtree: %s", fault.ErrNilCompare)
	}
	return &Tree[K, V]{
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Rotations - total rotations performed since the tree was created
func (tree *Tree[K, V]) Rotations() uint64 {
	return tree.rotations
}

// Clear - release all nodes, the tree is then empty
func (tree *Tree[K, V]) Clear() {
	destroy(tree.root)
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.freeNodes = 0
}

// post-order teardown clearing every link
func destroy[K, V any](p *Node[K, V]) {
	if nil == p {
		return
	}
	destroy(p.child[left])
	destroy(p.child[right])
	clearNode(p)
}
