// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/rbtree/fault"
)

const scenarioKeys = "5,3,8,1,4,7,9"

func run(arguments ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"rbtree-cli"}, arguments...))
	return w.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		arguments []string
		output    string
	}{
		{[]string{"--keys", scenarioKeys, "traverse"}, "1 3 4 5 7 8 9\n"},
		{[]string{"--keys", scenarioKeys, "traverse", "--order", "pre"}, "5 3 1 4 8 7 9\n"},
		{[]string{"-k", scenarioKeys, "traverse", "-o", "post"}, "1 4 3 7 9 8 5\n"},
		{[]string{"--keys", scenarioKeys, "search", "4"}, "found: 4\n"},
		{[]string{"--keys", scenarioKeys, "remove", "5"}, "1 3 4 7 8 9\n"},
		{[]string{"--keys", scenarioKeys, "min"}, "1\n"},
		{[]string{"--keys", scenarioKeys, "max"}, "9\n"},
		{[]string{"--keys", scenarioKeys, "successor", "5"}, "7\n"},
		{[]string{"--keys", scenarioKeys, "predecessor", "7"}, "5\n"},
		{[]string{"--keys", scenarioKeys, "predecessor", "1"}, "none\n"},
		{[]string{"--keys", "10, 20, 30", "traverse", "--order", "preorder"}, "20 10 30\n"},
		{[]string{"--keys", "2,2,2", "traverse"}, "2 2 2\n"},
		{[]string{"traverse"}, "\n"},
		{[]string{"version"}, "zero\n"},
	}

	for i, test := range tests {
		output, err := run(test.arguments...)
		assert.NoError(t, err, "%d: %v", i, test.arguments)
		assert.Equal(t, test.output, output, "%d: %v", i, test.arguments)
	}
}

func TestNotFound(t *testing.T) {
	tests := [][]string{
		{"--keys", scenarioKeys, "search", "42"},
		{"--keys", scenarioKeys, "remove", "42"},
		{"--keys", scenarioKeys, "successor", "6"},
	}
	for i, arguments := range tests {
		output, err := run(arguments...)
		assert.Equal(t, fault.ErrKeyNotFound, err, "%d: %v", i, arguments)
		assert.Equal(t, "not found\n", output, "%d: %v", i, arguments)
	}

	output, err := run("min")
	assert.Equal(t, fault.ErrKeyNotFound, err, "min of empty tree")
	assert.Equal(t, "empty\n", output, "min of empty tree")
}

func TestArgumentErrors(t *testing.T) {
	_, err := run("--keys", scenarioKeys, "search")
	assert.Equal(t, fault.ErrMissingArgument, err, "missing key")

	_, err = run("--keys", scenarioKeys, "search", "x")
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad key: %v", err)

	_, err = run("--keys", "1,two,3", "min")
	assert.True(t, errors.Is(err, fault.ErrInvalidKey), "bad key list: %v", err)

	_, err = run("--keys", scenarioKeys, "traverse", "--order", "sideways")
	assert.Equal(t, fault.ErrInvalidOrder, err, "bad order")
}

func TestCheck(t *testing.T) {
	output, err := run("--keys", scenarioKeys, "check")
	assert.NoError(t, err, "check")

	result := checkResult{}
	err = json.Unmarshal([]byte(output), &result)
	if nil != err {
		t.Fatalf("JSON error: %s  in: %q", err, output)
	}

	assert.True(t, result.Valid, "valid")
	assert.Equal(t, 7, result.Count, "count")
	assert.Equal(t, 3, result.Height, "height")
	if assert.NotNil(t, result.Root, "root") {
		assert.Equal(t, int64(5), *result.Root, "root key")
	}
	assert.Empty(t, result.Error, "error")
}
