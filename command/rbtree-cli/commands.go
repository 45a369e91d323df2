// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

type checkResult struct {
	Count       int    `json:"count"`
	Height      int    `json:"height"`
	BlackHeight int    `json:"black_height"`
	Rotations   uint64 `json:"rotations"`
	Root        *int64 `json:"root"`
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
}

func runTraverse(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	order, err := rbtree.ParseOrder(c.String("order"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "order: %s\n", order)
		for n := range m.tree.Walk(order) {
			fmt.Fprintf(m.w, "%d %s depth: %d\n", n.Key(), n.Colour(), n.Depth())
		}
		return nil
	}

	printKeys(m, m.tree.Keys(order))
	return nil
}

func runSearch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := keyArgument(c)
	if nil != err {
		return err
	}

	n := m.tree.Search(key)
	if nil == n {
		fmt.Fprintf(m.w, "not found\n")
		return fault.ErrKeyNotFound
	}

	if m.verbose {
		fmt.Fprintf(m.w, "found: %d  colour: %s  depth: %d  inserted: %d\n", n.Key(), n.Colour(), n.Depth(), n.Value())
		return nil
	}
	fmt.Fprintf(m.w, "found: %d\n", n.Key())
	return nil
}

func runRemove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := keyArgument(c)
	if nil != err {
		return err
	}

	if !m.tree.Remove(key) {
		fmt.Fprintf(m.w, "not found\n")
		return fault.ErrKeyNotFound
	}

	if m.verbose {
		fmt.Fprintf(m.e, "removed: %d  remaining: %d\n", key, m.tree.Count())
	}
	printKeys(m, m.tree.Keys(rbtree.InOrder))
	return m.tree.Check()
}

func runMin(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printExtreme(m, m.tree.First())
}

func runMax(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printExtreme(m, m.tree.Last())
}

func runSuccessor(c *cli.Context) error {
	return runNeighbour(c, func(n *rbtree.Node[int64, int]) *rbtree.Node[int64, int] {
		return n.Next()
	})
}

func runPredecessor(c *cli.Context) error {
	return runNeighbour(c, func(n *rbtree.Node[int64, int]) *rbtree.Node[int64, int] {
		return n.Prev()
	})
}

// with duplicate keys the neighbour is taken from the first node
// found by search
func runNeighbour(c *cli.Context, step func(*rbtree.Node[int64, int]) *rbtree.Node[int64, int]) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := keyArgument(c)
	if nil != err {
		return err
	}

	n := m.tree.Search(key)
	if nil == n {
		fmt.Fprintf(m.w, "not found\n")
		return fault.ErrKeyNotFound
	}

	s := step(n)
	if nil == s {
		fmt.Fprintf(m.w, "none\n")
		return nil
	}
	fmt.Fprintf(m.w, "%d\n", s.Key())
	return nil
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	result := checkResult{
		Count:       m.tree.Count(),
		Height:      m.tree.Height(),
		BlackHeight: m.tree.BlackHeight(),
		Rotations:   m.tree.Rotations(),
		Valid:       true,
	}
	if root := m.tree.Root(); nil != root {
		k := root.Key()
		result.Root = &k
	}

	err := m.tree.Check()
	if nil != err {
		result.Valid = false
		result.Error = err.Error()
	}

	if e := printJson(m.w, result); nil != e {
		return e
	}
	return err
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

func printExtreme(m *metadata, n *rbtree.Node[int64, int]) error {
	if nil == n {
		fmt.Fprintf(m.w, "empty\n")
		return fault.ErrKeyNotFound
	}
	fmt.Fprintf(m.w, "%d\n", n.Key())
	return nil
}

func printKeys(m *metadata, keys []int64) {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprintf("%d", k)
	}
	fmt.Fprintf(m.w, "%s\n", strings.Join(s, " "))
}

func keyArgument(c *cli.Context) (int64, error) {
	if c.NArg() < 1 {
		return 0, fault.ErrMissingArgument
	}
	return parseKey(c.Args().Get(0))
}
