// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckBalance - verify ordering and that every balance factor
// matches the actual sub-tree heights
func (tree *Tree) CheckBalance() bool {
	if tree.root.IsEmpty() {
		return nil == tree.root.left && nil == tree.root.right
	}
	_, ok := checkBalance(tree.root, nil, nil, tree.kind.compare)
	return ok
}

// internal: consistency checker, returns the sub-tree height
func checkBalance(p *Node, low *Node, high *Node, compare compareFunc) (int, bool) {
	if nil == p {
		return 0, true
	}
	if p.IsEmpty() {
		fmt.Printf("fail: empty node in a non-empty tree\n")
		return 0, false
	}
	if nil != low && compare(p.payload, low.payload) <= 0 {
		fmt.Printf("fail at node: %v  not after: %v\n", p.payload, low.payload)
		return 0, false
	}
	if nil != high && compare(p.payload, high.payload) >= 0 {
		fmt.Printf("fail at node: %v  not before: %v\n", p.payload, high.payload)
		return 0, false
	}

	lh, ok := checkBalance(p.left, low, p, compare)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right, p, high, compare)
	if !ok {
		return 0, false
	}

	expected := Balanced
	switch lh - rh {
	case 0:
	case 1:
		expected = LeftHigh
	case -1:
		expected = RightHigh
	default:
		fmt.Printf("fail at node: %v  heights: %d/%d\n", p.payload, lh, rh)
		return 0, false
	}
	if p.balance != expected {
		fmt.Printf("fail at node: %v  actual: %s  expected: %s\n", p.payload, p.balance, expected)
		return 0, false
	}

	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}
