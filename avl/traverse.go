// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Notation - order in which Walk visits nodes
type Notation int

// traversal orders, Infix is the default
const (
	Infix   Notation = iota // left, self, right: sorted order
	Prefix  Notation = iota // self, left, right
	Postfix Notation = iota // left, right, self
)

// ParseNotation - convert a name to a notation; blank means Infix
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "infix":
		return Infix, nil
	case "prefix":
		return Prefix, nil
	case "postfix":
		return Postfix, nil
	default:
		return Infix, fault.ErrUnknownNotation
	}
}

// String - the name accepted by ParseNotation
func (n Notation) String() string {
	switch n {
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "infix"
	}
}

// Walk - call fn for each node in the given order, stopping early if
// fn returns false; returns false if stopped early
func (tree *Tree) Walk(notation Notation, fn func(*Node) bool) bool {
	if tree.root.IsEmpty() {
		return true
	}
	return walk(tree.root, notation, fn)
}

func walk(p *Node, notation Notation, fn func(*Node) bool) bool {
	if nil == p {
		return true
	}
	switch notation {
	case Prefix:
		return fn(p) && walk(p.left, notation, fn) && walk(p.right, notation, fn)
	case Postfix:
		return walk(p.left, notation, fn) && walk(p.right, notation, fn) && fn(p)
	default:
		return walk(p.left, notation, fn) && fn(p) && walk(p.right, notation, fn)
	}
}

// ToArray - all payloads in the given order
func (tree *Tree) ToArray(notation Notation) []interface{} {
	out := make([]interface{}, 0, tree.count)
	tree.Walk(notation, func(p *Node) bool {
		out = append(out, p.payload)
		return true
	})
	return out
}

// First - return the node with the lowest payload, nil if empty
func (tree *Tree) First() *Node {
	if tree.root.IsEmpty() {
		return nil
	}
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest payload, nil if empty
func (tree *Tree) Last() *Node {
	if tree.root.IsEmpty() {
		return nil
	}
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	for nil != p.right {
		p = p.right
	}
	return p
}
