// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Balance - height(left) − height(right) restricted to -1, 0, +1
type Balance int

// the three possible states
const (
	Balanced  Balance = iota // both sub-trees same height
	LeftHigh  Balance = iota // left sub-tree is one higher
	RightHigh Balance = iota // right sub-tree is one higher
)

// String - names as shown by Print
func (b Balance) String() string {
	switch b {
	case Balanced:
		return "BALANCED"
	case LeftHigh:
		return "LEFT_HIGH"
	case RightHigh:
		return "RIGHT_HIGH"
	default:
		return "*INVALID*"
	}
}
