// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Search - find a specific item, nil if not present
//
// with duplicate keys the node returned is the one nearest the root
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.child[left]
		case c > 0:
			p = p.child[right]
		default:
			return p
		}
	}
	return nil
}

// Contains - true if at least one node has the key
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.Search(key)
}

// Min - the lowest key, false if the tree is empty
func (tree *Tree[K, V]) Min() (K, bool) {
	p := tree.First()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// Max - the highest key, false if the tree is empty
func (tree *Tree[K, V]) Max() (K, bool) {
	p := tree.Last()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}
