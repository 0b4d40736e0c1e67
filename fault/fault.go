// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// to allow for different classes of errors
type ExistsError string
type InvalidError string
type NotFoundError string

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrConstructionNotSequence = InvalidError("cannot create tree from non-array source")
	ErrDuplicateKey            = ExistsError("duplicate value cannot be inserted")
	ErrEmptyPayload            = InvalidError("cannot insert nil as a payload")
	ErrInvalidConfiguration    = InvalidError("configuration did not return a table")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrNotFoundConfigFile      = NotFoundError("config file is not found")
	ErrParameterTypeMismatch   = InvalidError("parameter type mismatch: collector is not usable")
	ErrSearchValueEmpty        = InvalidError("cannot search for a nil value")
	ErrTypeMismatch            = InvalidError("type mismatch: insertion value type does not match existing type")
	ErrUnknownNotation         = InvalidError("unknown traversal notation")
	ErrUnorderedPayload        = InvalidError("payload type has no ordering")
)

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
