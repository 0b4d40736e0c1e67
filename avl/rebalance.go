// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/metrics"
)

// rightBalance - atNode was RightHigh and its right branch has grown
func rightBalance(atNode *Node) insertResult {
	if nil == atNode {
		fault.Panicf("cannot right balance a nil node")
	}
	atNode.metrics.Increment(metrics.RightBalance)

	p1 := atNode.right
	if nil == p1 {
		fault.Panicf("cannot right balance without right-hand child at node: %v", atNode.payload)
	}
	switch p1.balance {
	case RightHigh:
		// single RR rotation
		atNode.balance = Balanced
		p1.balance = Balanced
		return insertResult{taller: false, newRoot: rotateLeft(atNode)}

	case LeftHigh:
		// double RL rotation, p2 becomes the sub-tree root
		p2 := p1.left
		switch p2.balance {
		case Balanced:
			atNode.balance = Balanced
			p1.balance = Balanced
		case LeftHigh:
			atNode.balance = Balanced
			p1.balance = RightHigh
		case RightHigh:
			atNode.balance = LeftHigh
			p1.balance = Balanced
		}
		p2.balance = Balanced
		atNode.right = rotateRight(p1)
		return insertResult{taller: false, newRoot: rotateLeft(atNode)}

	default:
		fault.Panicf("missed a balance operation at node: %v", atNode.payload)
	}
	return insertResult{}
}

// leftBalance - atNode was LeftHigh and its left branch has grown
func leftBalance(atNode *Node) insertResult {
	if nil == atNode {
		fault.Panicf("cannot left balance a nil node")
	}
	atNode.metrics.Increment(metrics.LeftBalance)

	p1 := atNode.left
	if nil == p1 {
		fault.Panicf("cannot left balance without left-hand child at node: %v", atNode.payload)
	}
	switch p1.balance {
	case LeftHigh:
		// single LL rotation
		atNode.balance = Balanced
		p1.balance = Balanced
		return insertResult{taller: false, newRoot: rotateRight(atNode)}

	case RightHigh:
		// double LR rotation, p2 becomes the sub-tree root
		p2 := p1.right
		switch p2.balance {
		case Balanced:
			atNode.balance = Balanced
			p1.balance = Balanced
		case LeftHigh:
			atNode.balance = RightHigh
			p1.balance = Balanced
		case RightHigh:
			atNode.balance = Balanced
			p1.balance = LeftHigh
		}
		p2.balance = Balanced
		atNode.left = rotateLeft(p1)
		return insertResult{taller: false, newRoot: rotateRight(atNode)}

	default:
		fault.Panicf("missed a balance operation at node: %v", atNode.payload)
	}
	return insertResult{}
}
