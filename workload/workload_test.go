// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"math"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/rbtree/background"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/workload"
	"github.com/bitmark-inc/rbtree/workload/mocks"
)

func baseConfiguration() workload.Configuration {
	return workload.Configuration{
		Name:          "soak",
		Seed:          12345,
		Operations:    1000,
		KeySpace:      200,
		InsertWeight:  5,
		RemoveWeight:  3,
		SearchWeight:  2,
		CheckInterval: 100,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		change func(*workload.Configuration)
		err    error
	}{
		{func(c *workload.Configuration) {}, nil},
		{func(c *workload.Configuration) { c.Operations = -1 }, fault.ErrInvalidOperationCount},
		{func(c *workload.Configuration) { c.KeySpace = 0 }, fault.ErrInvalidKeySpace},
		{func(c *workload.Configuration) { c.RemoveWeight = -1 }, fault.ErrInvalidWeights},
		{func(c *workload.Configuration) { c.InsertWeight, c.RemoveWeight, c.SearchWeight = 0, 0, 0 }, fault.ErrInvalidWeights},
		{func(c *workload.Configuration) { c.InsertWeight = 1000000 }, nil},
		{func(c *workload.Configuration) { c.InsertWeight = 1000001 }, fault.ErrInvalidWeights},
		{func(c *workload.Configuration) { c.InsertWeight, c.RemoveWeight = math.MaxInt, math.MaxInt }, fault.ErrInvalidWeights},
		{func(c *workload.Configuration) { c.CheckInterval = -5 }, fault.ErrInvalidCheckInterval},
		{func(c *workload.Configuration) { c.Rate = -1 }, fault.ErrInvalidRate},
		{func(c *workload.Configuration) { c.Rate = 10 }, fault.ErrInvalidBurst},
		{func(c *workload.Configuration) { c.Rate, c.Burst = 10, 1 }, nil},
	}

	for i, test := range tests {
		conf := baseConfiguration()
		test.change(&conf)
		assert.Equal(t, test.err, conf.Validate(), "%d: validate", i)
	}

	_, err := workload.New(baseConfiguration(), nil, nil, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err, "nil logger accepted")
}

func TestRunReportsProgress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Progress("soak", gomock.Any(), gomock.Any()).Times(10)
	r.EXPECT().Violation(gomock.Any(), gomock.Any()).Times(0)
	r.EXPECT().Finished("soak", gomock.Any()).Times(1)

	totals := &workload.Totals{}
	w, err := workload.New(baseConfiguration(), logger.New(category), r, totals)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	result, err := w.Run(make(chan struct{}))
	assert.NoError(t, err, "run")
	assert.Equal(t, uint64(1000), result.Operations, "operations")
	assert.Equal(t, result.Operations, result.Inserts+result.Removes+result.Searches, "operation split")
	assert.Equal(t, uint64(11), result.Checks, "checks")
	assert.Equal(t, w.Tree().Count(), result.Size, "size")
	assert.Equal(t, int(result.Inserts-(result.Removes-result.RemoveMisses)), result.Size, "size from operations")
	assert.NoError(t, w.Tree().Check(), "tree")

	assert.Equal(t, result.Inserts, totals.Inserts.Uint64(), "total inserts")
	assert.Equal(t, result.Removes, totals.Removes.Uint64(), "total removes")
	assert.Equal(t, result.Searches, totals.Searches.Uint64(), "total searches")
	assert.Equal(t, result.Hits, totals.Hits.Uint64(), "total hits")
	assert.True(t, totals.Violations.IsZero(), "violations")
}

// same seed gives the same tree
func TestRunDeterministic(t *testing.T) {
	run := func() []int64 {
		w, err := workload.New(baseConfiguration(), logger.New(category), nil, nil)
		if nil != err {
			t.Fatalf("new error: %s", err)
		}
		if _, err := w.Run(make(chan struct{})); nil != err {
			t.Fatalf("run error: %s", err)
		}
		return w.Tree().Keys(rbtree.PreOrder)
	}
	assert.Equal(t, run(), run(), "same seed, different tree")
}

func TestRunDetectsMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Violation("broken", fault.ErrSearchMismatch).Times(1)
	r.EXPECT().Finished(gomock.Any(), gomock.Any()).Times(0)

	conf := baseConfiguration()
	conf.Name = "broken"
	conf.KeySpace = 1
	conf.InsertWeight = 0
	conf.RemoveWeight = 0
	conf.SearchWeight = 1

	totals := &workload.Totals{}
	w, err := workload.New(conf, logger.New(category), r, totals)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	// a key the reference does not know about
	w.Tree().Insert(0, 0)

	result, err := w.Run(make(chan struct{}))
	assert.Equal(t, fault.ErrSearchMismatch, err, "run error")
	assert.Equal(t, uint64(1), result.Operations, "stopped at first operation")
	assert.Equal(t, uint64(1), totals.Violations.Uint64(), "violations")
}

func TestRunRateLimited(t *testing.T) {
	conf := baseConfiguration()
	conf.Operations = 20
	conf.Rate = 200
	conf.Burst = 1

	w, err := workload.New(conf, logger.New(category), nil, nil)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	start := time.Now()
	result, err := w.Run(make(chan struct{}))
	elapsed := time.Since(start)

	assert.NoError(t, err, "run")
	assert.Equal(t, uint64(20), result.Operations, "operations")
	if elapsed < 80*time.Millisecond {
		t.Errorf("rate limit not applied: 20 operations in %s", elapsed)
	}
}

func TestRunUntilShutdown(t *testing.T) {
	conf := baseConfiguration()
	conf.Operations = 0
	conf.Rate = 1
	conf.Burst = 1

	w, err := workload.New(conf, logger.New(category), nil, nil)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	p := workload.NewProcess(w)
	bg := background.Start(background.Processes{p}, nil)
	time.Sleep(50 * time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		bg.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("workload ignored shutdown")
	}

	result, err := p.Result()
	assert.NoError(t, err, "run")
	assert.Equal(t, uint64(1), result.Operations, "only the burst ran")
}

func TestLogReporter(t *testing.T) {
	conf := baseConfiguration()
	conf.Operations = 300

	log := logger.New(category)
	w, err := workload.New(conf, log, workload.NewLogReporter(log), nil)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	result, err := w.Run(make(chan struct{}))
	assert.NoError(t, err, "run")
	assert.Equal(t, "soak", result.Name, "name")
	assert.Equal(t, uint64(300), result.Operations, "operations")
	assert.Equal(t, w.Tree().Height(), result.Height, "height")
	assert.Equal(t, w.Tree().Rotations(), result.Rotations, "rotations")
}
