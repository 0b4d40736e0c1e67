// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and panic logging
//
// Every error returned by the tree is one of the instances declared
// here, so callers compare with == or the IsErrXXX class checks.
// Broken tree invariants are not returned; they are logged on the
// PANIC channel by Panicf and then the program panics.
package fault
