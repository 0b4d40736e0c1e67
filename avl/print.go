// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, right
// branch uppermost; returns the height of the tree
func (tree *Tree) Print(w io.Writer, printMetrics bool) int {
	if tree.root.IsEmpty() {
		fmt.Fprintf(w, "|------+ <empty>\n")
		return 0
	}
	return printTree(w, tree.root, "", root, printMetrics)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printMetrics bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printMetrics)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printMetrics && 0 != len(tree.metrics) {
		fmt.Fprintf(w, "%v %s [%s]\n", tree.payload, tree.balance, tree.metrics)
	} else {
		fmt.Fprintf(w, "%v %s\n", tree.payload, tree.balance)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printMetrics)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
