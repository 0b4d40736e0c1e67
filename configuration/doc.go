// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a Lua configuration file into a struct
//
// the file is executed and must return a table, which is mapped onto
// the fields of the struct using their gluamapper tags. The global
// "arg" holds any extra arguments passed by the caller.
package configuration
