// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/configuration"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/workload"
)

// basic defaults (directories and files are relative to the directory
// containing the configuration file)
const (
	defaultReportInterval = 10 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "rbsoak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultKeySpace      = 1000
	defaultInsertWeight  = 5
	defaultRemoveWeight  = 3
	defaultSearchWeight  = 2
	defaultCheckInterval = 1000
)

// Configuration - the soak configuration file
type Configuration struct {
	PidFile        string                   `gluamapper:"pidfile" json:"pidfile"`
	ReportInterval int                      `gluamapper:"report_interval" json:"report_interval"`
	Workloads      []workload.Configuration `gluamapper:"workloads" json:"workloads"`
	Logging        logger.Configuration     `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		PidFile:        "", // no PidFile by default
		ReportInterval: defaultReportInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{ // fresh map, the parser merges into it
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.ReportInterval <= 0 {
		return nil, fault.ErrInvalidReportInterval
	}

	if 0 == len(options.Workloads) {
		return nil, fault.ErrNoWorkloads
	}

	names := make(map[string]struct{})
	for i := range options.Workloads {
		w := &options.Workloads[i]
		setWorkloadDefaults(i, w)
		if _, ok := names[w.Name]; ok {
			return nil, fault.ErrDuplicateWorkload
		}
		names[w.Name] = struct{}{}

		if err := w.Validate(); nil != err {
			return nil, fmt.Errorf("workload: %q  error: %w", w.Name, err)
		}
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(dataDirectory, options.PidFile)
	}

	// the log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create the log directory if it does not already exist
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// unset numeric items take the defaults, a workload that sets none
// of the weights gets the default mix
func setWorkloadDefaults(i int, w *workload.Configuration) {
	if "" == w.Name {
		w.Name = fmt.Sprintf("soak-%d", i)
	}
	if 0 == w.Seed {
		w.Seed = int64(i + 1)
	}
	if 0 == w.KeySpace {
		w.KeySpace = defaultKeySpace
	}
	if 0 == w.InsertWeight && 0 == w.RemoveWeight && 0 == w.SearchWeight {
		w.InsertWeight = defaultInsertWeight
		w.RemoveWeight = defaultRemoveWeight
		w.SearchWeight = defaultSearchWeight
	}
	if 0 == w.CheckInterval {
		w.CheckInterval = defaultCheckInterval
	}
}

// if the path is not absolute, prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
