// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/metrics"
)

// single RR rotation: the right child becomes the sub-tree root
//
// only links move; the caller sets the balance factors
func rotateLeft(oldRoot *Node) *Node {
	if nil == oldRoot {
		fault.Panicf("cannot rotate a nil node")
	}
	if nil == oldRoot.right {
		fault.Panicf("cannot rotate left without right-hand child at node: %v", oldRoot.payload)
	}
	oldRoot.metrics.Increment(metrics.RotateLeft)

	newRoot := oldRoot.right
	oldRoot.right = newRoot.left
	newRoot.left = oldRoot
	return newRoot
}

// single LL rotation: the left child becomes the sub-tree root
func rotateRight(oldRoot *Node) *Node {
	if nil == oldRoot {
		fault.Panicf("cannot rotate a nil node")
	}
	if nil == oldRoot.left {
		fault.Panicf("cannot rotate right without left-hand child at node: %v", oldRoot.payload)
	}
	oldRoot.metrics.Increment(metrics.RotateRight)

	newRoot := oldRoot.left
	oldRoot.left = newRoot.right
	newRoot.right = oldRoot
	return newRoot
}
