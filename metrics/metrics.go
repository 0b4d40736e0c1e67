// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - named operation counters
//
// Counters are plain maps and are not safe for concurrent update.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// counter names used by the tree
const (
	Add          = "add"
	Insertion    = "insertion"
	RotateLeft   = "rotateLeft"
	RotateRight  = "rotateRight"
	LeftBalance  = "leftBalance"
	RightBalance = "rightBalance"
	SearchLeft   = "searchLeft"
	SearchRight  = "searchRight"
	Depth        = "depth"
)

// Collector - anything that can count named events
type Collector interface {
	Increment(name string) uint64
}

// Counters - counter name → count
type Counters map[string]uint64

// New - create an empty set of counters
func New() Counters {
	return make(Counters)
}

// Increment - add 1 to a named counter, returns new value
func (c Counters) Increment(name string) uint64 {
	c[name] += 1
	return c[name]
}

// Get - current value of a counter, zero if it was never incremented
func (c Counters) Get(name string) uint64 {
	return c[name]
}

// Has - true if the counter was ever incremented
func (c Counters) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Merge - pointwise sum over the union of both sets of names,
// neither argument is modified
func (c Counters) Merge(other Counters) Counters {
	result := make(Counters, len(c)+len(other))
	for name, n := range c {
		result[name] = n
	}
	for name, n := range other {
		result[name] += n
	}
	return result
}

// Clone - independent copy
func (c Counters) Clone() Counters {
	return c.Merge(nil)
}

// Names - sorted counter names
func (c Counters) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// String - "name=n" pairs in name order
func (c Counters) String() string {
	s := make([]string, 0, len(c))
	for _, name := range c.Names() {
		s = append(s, fmt.Sprintf("%s=%d", name, c[name]))
	}
	return strings.Join(s, " ")
}
