// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/metrics"
)

// SearchResult - outcome of a single Find
type SearchResult struct {
	Node    *Node            // nil if not found
	Metrics metrics.Counters // descents made by this search only
}

// Found - true if the search matched a node
func (r *SearchResult) Found() bool {
	return nil != r.Node
}

// Find - search for a specific payload
//
// each step records searchLeft or searchRight and depth; node
// counters are not touched
func (tree *Tree) Find(value interface{}) (*SearchResult, error) {
	if nil == value || isNilValue(value) {
		return nil, fault.ErrSearchValueEmpty
	}
	result := &SearchResult{
		Metrics: metrics.New(),
	}
	if nil == tree.kind {
		return result, nil
	}
	if !tree.kind.matches(value) {
		return nil, fault.ErrTypeMismatch
	}
	result.Node = search(value, tree.root, tree.kind.compare, result.Metrics)
	return result, nil
}

func search(value interface{}, tree *Node, compare compareFunc, m metrics.Counters) *Node {
	if nil == tree {
		return nil
	}

	c := compare(value, tree.payload)
	switch {
	case c > 0: // value > tree.payload
		m.Increment(metrics.SearchRight)
		m.Increment(metrics.Depth)
		return search(value, tree.right, compare, m)
	case c < 0: // value < tree.payload
		m.Increment(metrics.SearchLeft)
		m.Increment(metrics.Depth)
		return search(value, tree.left, compare, m)
	default:
		return tree
	}
}

// Depth - height of the tree: 0 when empty, 1 for a single node
//
// follows the higher branch at each node, taking the left branch when
// a node is balanced; if a collector is given each step is counted in
// it as searchLeft or searchRight
func (tree *Tree) Depth(collector metrics.Collector) (int, error) {
	if nil != collector && isNilValue(collector) {
		return 0, fault.ErrParameterTypeMismatch
	}
	if tree.root.IsEmpty() {
		return 0, nil
	}

	height := 1
	for p := tree.root; ; height += 1 {
		next := p.left
		counter := metrics.SearchLeft
		if RightHigh == p.balance {
			next = p.right
			counter = metrics.SearchRight
		}
		if nil == next {
			return height, nil
		}
		if nil != collector {
			collector.Increment(counter)
		}
		p = next
	}
}

// true for an interface holding a nil pointer, map, slice, channel
// or func: such a value can neither be compared nor count anything
func isNilValue(i interface{}) bool {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
