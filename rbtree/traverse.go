// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"iter"
	"strings"

	"github.com/bitmark-inc/rbtree/fault"
)

// Order - the sequence in which a traversal visits nodes
type Order int

// traversal orders
const (
	PreOrder  Order = iota // node, left, right
	InOrder                // left, node, right - ascending keys
	PostOrder              // left, right, node
)

// String - printable order name
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name like "in", "in-order" or "InOrder" to
// an Order
func ParseOrder(s string) (Order, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order")
	switch strings.TrimSuffix(s, "-") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	default:
		return InOrder, fault.ErrInvalidOrder
	}
}

// Walk - visit every node in the given order
//
// the sequence can be restarted and stops early when the loop body
// breaks, the tree must not be modified during the walk
func (tree *Tree[K, V]) Walk(order Order) iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		walk(tree.root, order, yield)
	}
}

// returns false once yield asks to stop
func walk[K, V any](p *Node[K, V], order Order, yield func(*Node[K, V]) bool) bool {
	if nil == p {
		return true
	}
	if PreOrder == order && !yield(p) {
		return false
	}
	if !walk(p.child[left], order, yield) {
		return false
	}
	if InOrder == order && !yield(p) {
		return false
	}
	if !walk(p.child[right], order, yield) {
		return false
	}
	if PostOrder == order && !yield(p) {
		return false
	}
	return true
}

// Keys - all keys in the given order
func (tree *Tree[K, V]) Keys(order Order) []K {
	keys := make([]K, 0, tree.count)
	for p := range tree.Walk(order) {
		keys = append(keys, p.key)
	}
	return keys
}

// All - key/value pairs in ascending key order
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := range tree.Walk(InOrder) {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
