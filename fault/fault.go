// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBlackHeight            = InvariantError("black height differs between paths")
	ErrCount                  = InvariantError("node count does not match tree contents")
	ErrDuplicateWorkload      = ExistsError("duplicate workload name")
	ErrInvalidBurst           = InvalidError("burst must be positive when rate is set")
	ErrInvalidCheckInterval   = InvalidError("check interval is invalid")
	ErrInvalidKey             = InvalidError("key is invalid")
	ErrInvalidKeySpace        = InvalidError("key space must be positive")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidOperationCount  = InvalidError("operation count is invalid")
	ErrInvalidOrder           = InvalidError("traversal order is invalid")
	ErrInvalidRate            = InvalidError("rate is invalid")
	ErrInvalidReportInterval  = InvalidError("report interval is invalid")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidWeights         = InvalidError("operation weights are invalid")
	ErrKeyNotFound            = NotFoundError("key not found")
	ErrMissingArgument        = InvalidError("missing argument")
	ErrMissingChild           = InvariantError("rotation requires a child")
	ErrNilCompare             = InvalidError("compare function is nil")
	ErrNodeNotInTree          = InvariantError("node is not linked into the tree")
	ErrNoWorkloads            = InvalidError("no workloads configured")
	ErrNotConfigurationResult = InvalidError("configuration did not return a table")
	ErrOrdering               = InvariantError("keys out of order")
	ErrParentLink             = InvariantError("parent link is inconsistent")
	ErrRedRed                 = InvariantError("red node has a red child")
	ErrRemoveMismatch         = ProcessError("remove result disagrees with reference")
	ErrRootNotBlack           = InvariantError("root is not black")
	ErrSearchMismatch         = ProcessError("search result disagrees with reference")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
