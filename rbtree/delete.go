// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Remove - removes one item with the key from the tree
//
// returns false, leaving the tree untouched, if the key is not present
func (tree *Tree[K, V]) Remove(key K) bool {
	z := tree.Search(key)
	if nil == z {
		return false
	}
	tree.delete(z)
	return true
}

// RemoveNode - removes a specific node, which must belong to this
// tree, e.g. one of several nodes with equal keys
//
// a node that is no longer linked into the tree, such as one already
// removed, is an invariant violation and panics
func (tree *Tree[K, V]) RemoveNode(z *Node[K, V]) {
	if nil == z {
		return
	}
	if !tree.attached(z) {
		fault.Panicf("rbtree: %s: key: %v", fault.ErrNodeNotInTree, z.key)
	}
	tree.delete(z)
}

// true if z is the root or hangs from its parent
func (tree *Tree[K, V]) attached(z *Node[K, V]) bool {
	if z == tree.root {
		return true
	}
	if nil == z.up {
		return false
	}
	return z == z.up.child[left] || z == z.up.child[right]
}

// internal delete routine
//
// child is the position that takes the place of the node physically
// removed, possibly nil, so its parent is tracked separately
func (tree *Tree[K, V]) delete(z *Node[K, V]) {
	var child *Node[K, V]
	var parent *Node[K, V]
	removed := z.colour

	if nil != z.child[left] && nil != z.child[right] {
		// successor has no left child
		y := z.child[right].first()
		removed = y.colour
		child = y.child[right]

		if y.up == z {
			parent = y
		} else {
			parent = y.up
			parent.child[left] = child
			if nil != child {
				child.up = parent
			}
			y.child[right] = z.child[right]
			y.child[right].up = y
		}

		// y takes over z's place, links and colour
		tree.replace(z, y)
		y.child[left] = z.child[left]
		y.child[left].up = y
		y.colour = z.colour
	} else {
		child = z.child[left]
		if nil == child {
			child = z.child[right]
		}
		parent = z.up
		tree.replace(z, child)
	}

	tree.count -= 1
	tree.freeNode(z)

	// removing a red node cannot change any black height
	if Black == removed {
		tree.deleteFixup(child, parent)
	}
}

// restore the black height of the path through x which is one short
func (tree *Tree[K, V]) deleteFixup(x *Node[K, V], parent *Node[K, V]) {
	for x != tree.root && Black == colourOf(x) {
		d := left
		if x != parent.child[left] {
			d = right
		}
		far := d.opposite()

		// the short side has a real black sibling subtree
		sibling := parent.child[far]

		// case 1: red sibling, rotate to get a black one
		if Red == sibling.colour {
			sibling.colour = Black
			parent.colour = Red
			tree.rotate(parent, d)
			sibling = parent.child[far]
		}

		// case 2: both nephews black, shorten the sibling side and move up
		if Black == colourOf(sibling.child[left]) && Black == colourOf(sibling.child[right]) {
			sibling.colour = Red
			x = parent
			parent = x.up
			continue
		}

		// case 3: only the near nephew is red, turn it into case 4
		if Black == colourOf(sibling.child[far]) {
			sibling.child[d].colour = Black
			sibling.colour = Red
			tree.rotate(sibling, far)
			sibling = parent.child[far]
		}

		// case 4: far nephew red
		sibling.colour = parent.colour
		parent.colour = Black
		sibling.child[far].colour = Black
		tree.rotate(parent, d)
		x = tree.root
		break
	}
	if nil != x {
		x.colour = Black
	}
}
