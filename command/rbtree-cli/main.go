// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

type metadata struct {
	tree    *rbtree.Tree[int64, int]
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		// not found has already been reported on the output
		if !fault.IsErrNotFound(err) {
			fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "rbtree-cli"
	app.Usage = "build a red-black tree from a key list and inspect it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " comma separated integer `KEYS` inserted in the order given",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "traverse",
			Usage:     "list the keys in a traversal order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [pre|in|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:      "search",
			Usage:     "look up a key",
			ArgsUsage: "*KEY",
			Action:    runSearch,
		},
		{
			Name:      "remove",
			Usage:     "remove one occurrence of a key and list the remaining keys",
			ArgsUsage: "*KEY",
			Action:    runRemove,
		},
		{
			Name:   "min",
			Usage:  "smallest key",
			Action: runMin,
		},
		{
			Name:   "max",
			Usage:  "largest key",
			Action: runMax,
		},
		{
			Name:      "successor",
			Usage:     "the key following KEY in order",
			ArgsUsage: "*KEY",
			Action:    runSuccessor,
		},
		{
			Name:      "predecessor",
			Usage:     "the key preceding KEY in order",
			ArgsUsage: "*KEY",
			Action:    runPredecessor,
		},
		{
			Name:   "check",
			Usage:  "verify the red-black properties and print tree statistics",
			Action: runCheck,
		},
		{
			Name:   "version",
			Usage:  "display rbtree-cli version",
			Action: runVersion,
		},
	}

	// build the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		keys, err := parseKeys(c.GlobalString("keys"))
		if nil != err {
			return err
		}

		tree := rbtree.New[int64, int]()
		for i, k := range keys {
			tree.Insert(k, i)
		}

		if verbose {
			fmt.Fprintf(e, "inserted: %d keys  rotations: %d\n", tree.Count(), tree.Rotations())
		}

		c.App.Metadata["config"] = &metadata{
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

// comma separated list, blank items are skipped
func parseKeys(s string) ([]int64, error) {
	keys := make([]int64, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" == item {
			continue
		}
		k, err := parseKey(item)
		if nil != err {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseKey(s string) (int64, error) {
	k, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
	}
	return k, nil
}
