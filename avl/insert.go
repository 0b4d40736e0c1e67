// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/metrics"
)

// passed from a child add back to its parent
type insertResult struct {
	taller  bool  // the sub-tree height grew by one
	newRoot *Node // non-nil if a rotation replaced the sub-tree root
}

// Add - insert a new payload into the tree
//
// the first successful Add fixes the payload type for the tree; on
// error the tree is unchanged
func (tree *Tree) Add(payload interface{}) error {
	if nil == payload || isNilValue(payload) {
		return fault.ErrEmptyPayload
	}

	kind := tree.kind
	if nil == kind {
		k, err := payloadTypeOf(payload)
		if nil != err {
			return err
		}
		kind = k
	} else if !kind.matches(payload) {
		return fault.ErrTypeMismatch
	}

	result, err := tree.root.add(payload, kind.compare)
	if nil != err {
		return err
	}
	tree.kind = kind
	if nil != result.newRoot {
		tree.root = result.newRoot
	}
	tree.count += 1
	return nil
}

// internal routine for insert
//
// counters are only incremented once the descent has succeeded so a
// duplicate leaves everything untouched
func (p *Node) add(payload interface{}, compare compareFunc) (insertResult, error) {
	if nil == payload || isNilValue(payload) {
		return insertResult{}, fault.ErrEmptyPayload
	}

	// an empty node counts as growing taller so that filling the root
	// and filling a new leaf are handled alike by the caller
	if p.IsEmpty() {
		p.payload = payload
		p.balance = Balanced
		p.metrics.Increment(metrics.Insertion)
		return insertResult{taller: true}, nil
	}

	c := compare(payload, p.payload)
	switch {
	case c > 0: // payload > p.payload
		child := p.right
		if nil == child {
			child = newNode()
		}
		result, err := child.add(payload, compare)
		if nil != err {
			return insertResult{}, err
		}
		p.right = child
		p.metrics.Increment(metrics.Add)
		if nil != result.newRoot {
			p.right = result.newRoot
		}
		if !result.taller {
			return insertResult{}, nil
		}

		// right branch has grown
		switch p.balance {
		case LeftHigh:
			p.balance = Balanced
			return insertResult{}, nil
		case Balanced:
			p.balance = RightHigh
			return insertResult{taller: true}, nil
		default: // RightHigh, rebalance
			return rightBalance(p), nil
		}

	case c < 0: // payload < p.payload
		child := p.left
		if nil == child {
			child = newNode()
		}
		result, err := child.add(payload, compare)
		if nil != err {
			return insertResult{}, err
		}
		p.left = child
		p.metrics.Increment(metrics.Add)
		if nil != result.newRoot {
			p.left = result.newRoot
		}
		if !result.taller {
			return insertResult{}, nil
		}

		// left branch has grown
		switch p.balance {
		case RightHigh:
			p.balance = Balanced
			return insertResult{}, nil
		case Balanced:
			p.balance = LeftHigh
			return insertResult{taller: true}, nil
		default: // LeftHigh, rebalance
			return leftBalance(p), nil
		}

	default:
		return insertResult{}, fault.ErrDuplicateKey
	}
}
