// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that records, per node, how
// much structural work was done at that node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// A tree holds payloads of a single type; the first insertion fixes
// the type and its ordering.  Duplicates are rejected rather than
// overwritten and there is no delete.  An empty tree still has a
// root node, it just holds no payload.
//
// Every node keeps its own counters (insertion, add, rotateLeft,
// rotateRight, leftBalance, rightBalance) and Metrics sums them over
// the whole tree each time it is called.
package avl
