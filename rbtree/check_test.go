// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/rbtree/fault"
)

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree[int, int])
		err     error
	}{
		{
			name:    "valid",
			corrupt: func(tree *Tree[int, int]) {},
			err:     nil,
		},
		{
			name:    "red root",
			corrupt: func(tree *Tree[int, int]) { tree.root.colour = Red },
			err:     fault.ErrRootNotBlack,
		},
		{
			name: "red red",
			corrupt: func(tree *Tree[int, int]) {
				// keep black heights equal on both sides of 2
				tree.root.child[left].colour = Red
				tree.root.child[right].colour = Red
				tree.root.child[left].child[left].colour = Red
				tree.root.child[left].child[right].colour = Red
			},
			err: fault.ErrRedRed,
		},
		{
			name:    "black height",
			corrupt: func(tree *Tree[int, int]) { tree.root.child[left].child[left].colour = Red },
			err:     fault.ErrBlackHeight,
		},
		{
			name: "parent link",
			corrupt: func(tree *Tree[int, int]) {
				p := tree.root.child[right].child[right]
				p.up = tree.root
			},
			err: fault.ErrParentLink,
		},
		{
			name:    "ordering",
			corrupt: func(tree *Tree[int, int]) { tree.root.child[left].key = 9 },
			err:     fault.ErrOrdering,
		},
		{
			name:    "count",
			corrupt: func(tree *Tree[int, int]) { tree.count += 1 },
			err:     fault.ErrCount,
		},
		{
			name: "count of empty",
			corrupt: func(tree *Tree[int, int]) {
				tree.root = nil
			},
			err: fault.ErrCount,
		},
	}

	for _, test := range tests {
		tree := handBuilt()
		assert.NoError(t, tree.Check(), "%s: before corruption", test.name)
		test.corrupt(tree)
		assert.Equal(t, test.err, tree.Check(), test.name)
	}
}

func TestBlackHeight(t *testing.T) {
	tree := handBuilt()
	assert.Equal(t, 2, tree.BlackHeight(), "all black, three levels")
	assert.Equal(t, 3, tree.Height(), "height")

	tree.root.child[left].colour = Red
	tree.root.child[right].colour = Red
	assert.NoError(t, tree.Check(), "red middle level")
	assert.Equal(t, 1, tree.BlackHeight(), "red middle level")

	assert.Equal(t, 0, New[int, int]().BlackHeight(), "empty")
}
