// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/metrics"
)

// Node - a node in the tree
type Node struct {
	left    *Node            // left sub-tree
	right   *Node            // right sub-tree
	payload interface{}      // nil only for the root of an empty tree
	balance Balance          // LeftHigh, Balanced, RightHigh
	metrics metrics.Counters // work done at this node only
}

// allocate an empty node
func newNode() *Node {
	return &Node{
		balance: Balanced,
		metrics: metrics.New(),
	}
}

// IsEmpty - true if the node holds no payload
func (p *Node) IsEmpty() bool {
	return nil == p.payload
}

// Payload - read the payload from a node
func (p *Node) Payload() interface{} {
	return p.payload
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Balance - current balance factor
func (p *Node) Balance() Balance {
	return p.balance
}

// LocalMetrics - a copy of the counters for work done at this node
func (p *Node) LocalMetrics() metrics.Counters {
	return p.metrics.Clone()
}

// Metrics - counters of this node summed with those of all its
// descendants, built fresh on each call
func (p *Node) Metrics() metrics.Counters {
	m := p.metrics.Clone()
	if nil != p.left {
		m = m.Merge(p.left.Metrics())
	}
	if nil != p.right {
		m = m.Merge(p.right.Metrics())
	}
	return m
}
