// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// largest value of a single operation weight, keeps the sum of the
// weights far from overflow
const maximumWeight = 1000000

// Configuration - parameters of a single workload
type Configuration struct {
	Name          string  `gluamapper:"name" json:"name"`
	Seed          int64   `gluamapper:"seed" json:"seed"`
	Operations    int     `gluamapper:"operations" json:"operations"` // 0 ⇒ until shutdown
	KeySpace      int64   `gluamapper:"key_space" json:"key_space"`
	InsertWeight  int     `gluamapper:"insert_weight" json:"insert_weight"`
	RemoveWeight  int     `gluamapper:"remove_weight" json:"remove_weight"`
	SearchWeight  int     `gluamapper:"search_weight" json:"search_weight"`
	CheckInterval int     `gluamapper:"check_interval" json:"check_interval"` // 0 ⇒ only at end
	Rate          float64 `gluamapper:"rate" json:"rate"`                     // operations per second, 0 ⇒ unlimited
	Burst         int     `gluamapper:"burst" json:"burst"`
}

// Validate - check the values are usable
func (conf *Configuration) Validate() error {
	if conf.Operations < 0 {
		return fault.ErrInvalidOperationCount
	}
	if conf.KeySpace <= 0 {
		return fault.ErrInvalidKeySpace
	}
	for _, w := range []int{conf.InsertWeight, conf.RemoveWeight, conf.SearchWeight} {
		if w < 0 || w > maximumWeight {
			return fault.ErrInvalidWeights
		}
	}
	if 0 == conf.InsertWeight+conf.RemoveWeight+conf.SearchWeight {
		return fault.ErrInvalidWeights
	}
	if conf.CheckInterval < 0 {
		return fault.ErrInvalidCheckInterval
	}
	if conf.Rate < 0 {
		return fault.ErrInvalidRate
	}
	if conf.Rate > 0 && conf.Burst < 1 {
		return fault.ErrInvalidBurst
	}
	return nil
}
