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

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node        // never nil
	kind  *payloadType // nil until the first insertion
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  newNode(),
		kind:  nil,
		count: 0,
	}
}

// FromArray - create a tree by adding each element of a slice or
// array in order
//
// any other kind of source is rejected; the first failing element
// aborts construction
func FromArray(source interface{}) (*Tree, error) {
	v := reflect.ValueOf(source)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fault.ErrConstructionNotSequence
	}

	tree := New()
	for i := 0; i < v.Len(); i += 1 {
		if err := tree.Add(v.Index(i).Interface()); nil != err {
			return nil, err
		}
	}
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return tree.root.IsEmpty()
}

// Count - number of payloads currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// PayloadType - name of the type fixed by the first insertion, or
// empty if nothing has been inserted
func (tree *Tree) PayloadType() string {
	if nil == tree.kind {
		return ""
	}
	return tree.kind.String()
}

// Metrics - all node counters summed over the whole tree
func (tree *Tree) Metrics() metrics.Counters {
	return tree.root.Metrics()
}
