// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.child[left] {
		p = p.child[left]
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.child[right] {
		p = p.child[right]
	}
	return p
}

// Successor - the node following p in key order or nil, nil for a
// nil p so the result of Search can be passed directly
func (tree *Tree[K, V]) Successor(p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	return p.Next()
}

// Predecessor - the node preceding p in key order or nil, nil for
// a nil p
func (tree *Tree[K, V]) Predecessor(p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	return p.Prev()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// the climb stops at the first ancestor reached from its left side,
// node identity is used rather than keys so duplicates are visited
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.child[right] {
		return p.child[right].first()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.child[left] {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.child[left] {
		return p.child[left].last()
	}
	for up := p.up; nil != up; p, up = up, up.up {
		if p == up.child[right] {
			return up
		}
	}
	return nil
}
