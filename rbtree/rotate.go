// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// rotate node x towards side d, rotate(x, left) is the usual left
// rotation:
//
//	  P                    P
//	  |                    |
//	  x                    y
//	 / \                  / \
//	A   y       →        x   C
//	   / \              / \
//	  B   C            A   B
//
// ordering is preserved, colours are left for the caller to fix
func (tree *Tree[K, V]) rotate(x *Node[K, V], d direction) {
	o := d.opposite()
	y := x.child[o]
	if nil == y {
		fault.Panicf("rbtree: %s: rotate %v at key: %v", fault.ErrMissingChild, d, x.key)
	}

	x.child[o] = y.child[d]
	if nil != y.child[d] {
		y.child[d].up = x
	}
	tree.replace(x, y)
	y.child[d] = x
	x.up = y

	tree.rotations += 1
}

func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	tree.rotate(x, left)
}

func (tree *Tree[K, V]) rotateRight(y *Node[K, V]) {
	tree.rotate(y, right)
}

// put v (possibly nil) where u hangs from u's parent
func (tree *Tree[K, V]) replace(u *Node[K, V], v *Node[K, V]) {
	if nil == u.up {
		tree.root = v
	} else {
		u.up.child[u.side()] = v
	}
	if nil != v {
		v.up = u.up
	}
}

// String - name of a rotation direction for diagnostics
func (d direction) String() string {
	if left == d {
		return "left"
	}
	return "right"
}
