// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Colour - the red/black tag of a node
type Colour int

// the two node colours, an empty position reads as Black
const (
	Red Colour = iota
	Black
)

// String - printable colour name
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// index into the child links of a node
type direction int

const (
	left  direction = 0
	right direction = 1
)

// the mirror image side
func (d direction) opposite() direction {
	return 1 - d
}

// Node - a node in the tree
type Node[K, V any] struct {
	child  [2]*Node[K, V] // left and right sub-trees
	up     *Node[K, V]    // points to parent node, does not own it
	key    K              // key part for ordering
	value  V              // value part for data storage
	colour Colour
}

// colour of a possibly empty position
func colourOf[K, V any](p *Node[K, V]) Colour {
	if nil == p {
		return Black
	}
	return p.colour
}

// which side of its parent a node hangs from
// must not be called on the root
func (p *Node[K, V]) side() direction {
	if p == p.up.child[left] {
		return left
	}
	return right
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - replace the value stored in a node, the key cannot be
// changed as that would break the ordering
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Colour - the current colour of a node
func (p *Node[K, V]) Colour() Colour {
	return p.colour
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.child[left]
}

// Right - return the right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.child[right]
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
