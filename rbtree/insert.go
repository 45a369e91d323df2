// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - add a new node to the tree and return it
//
// a key equal to an existing key is not an error and does not
// overwrite, the new node is placed to the right of the equal one
func (tree *Tree[K, V]) Insert(key K, value V) *Node[K, V] {
	n := tree.newNode(key, value)

	var parent *Node[K, V]
	d := left
	for p := tree.root; nil != p; p = p.child[d] {
		parent = p
		if tree.compare(key, p.key) < 0 {
			d = left
		} else {
			d = right
		}
	}

	n.up = parent
	if nil == parent {
		tree.root = n
	} else {
		parent.child[d] = n
	}
	tree.count += 1

	tree.insertFixup(n)
	return n
}

// restore the colouring after attaching the red node n
func (tree *Tree[K, V]) insertFixup(n *Node[K, V]) {
	for {
		parent := n.up
		if nil == parent || Black == parent.colour {
			break
		}

		// a red parent is never the root so grandparent exists
		grandparent := parent.up
		d := parent.side()
		uncle := grandparent.child[d.opposite()]

		// red uncle: push the red up and retry from the grandparent
		if Red == colourOf(uncle) {
			parent.colour = Black
			uncle.colour = Black
			grandparent.colour = Red
			n = grandparent
			continue
		}

		// inner grandchild: rotate it to the outside first
		if n == parent.child[d.opposite()] {
			tree.rotate(parent, d)
			parent = n // now in the parent's place
		}

		// outer grandchild
		parent.colour = Black
		grandparent.colour = Red
		tree.rotate(grandparent, d.opposite())
		break
	}
	tree.root.colour = Black
}
