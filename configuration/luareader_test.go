// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/rbtree/configuration"
	"github.com/bitmark-inc/rbtree/fault"
)

type item struct {
	Name string `gluamapper:"name"`
	Seed int64  `gluamapper:"seed"`
}

type sample struct {
	PidFile  string `gluamapper:"pidfile"`
	Interval int    `gluamapper:"report_interval"`
	Items    []item `gluamapper:"workloads"`
}

func writeFile(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, `
local M = {}
M.pidfile = arg[0] .. ".pid"
M.report_interval = 5
M.workloads = {
    { name = "one", seed = 1 },
    { name = "two", seed = 2 },
}
return M
`)

	conf := sample{
		Interval: 10,
	}
	err := configuration.ParseConfigurationFile(fileName, &conf)
	assert.NoError(t, err, "parse")

	assert.Equal(t, fileName+".pid", conf.PidFile, "pidfile from arg[0]")
	assert.Equal(t, 5, conf.Interval, "interval")
	assert.Equal(t, []item{{"one", 1}, {"two", 2}}, conf.Items, "workloads")
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, "return { pidfile = 'x.pid' }")

	conf := sample{
		Interval: 10,
	}
	err := configuration.ParseConfigurationFile(fileName, &conf)
	assert.NoError(t, err, "parse")
	assert.Equal(t, "x.pid", conf.PidFile, "pidfile")
	assert.Equal(t, 10, conf.Interval, "default interval overwritten")
}

func TestParseErrors(t *testing.T) {
	conf := sample{}

	err := configuration.ParseConfigurationFile("/does/not/exist.conf", &conf)
	assert.Error(t, err, "missing file")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {"), &conf)
	assert.Error(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(writeFile(t, "return 42"), &conf)
	assert.Equal(t, fault.ErrNotConfigurationResult, err, "non-table result")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {}"), conf)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer")

	n := 0
	err = configuration.ParseConfigurationFile(writeFile(t, "return {}"), &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "pointer to non-struct")
}
