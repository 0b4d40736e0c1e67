// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strconv"

	"github.com/samber/lo"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/metrics"
)

// the results shown by the program
type report struct {
	PayloadType  string           `json:"payloadType"`
	Count        int              `json:"count"`
	Depth        int              `json:"depth"`
	DepthMetrics metrics.Counters `json:"depthMetrics"`
	Traversal    []traversal      `json:"traversal"`
	Metrics      metrics.Counters `json:"metrics"`
	Find         *findReport      `json:"find,omitempty"`
}

type traversal struct {
	Notation string        `json:"notation"`
	Payloads []interface{} `json:"payloads"`
}

type findReport struct {
	Value   interface{}      `json:"value"`
	Found   bool             `json:"found"`
	Metrics metrics.Counters `json:"metrics"`
}

// gather everything about a tree; find is skipped if nil
func makeReport(tree *avl.Tree, notations []avl.Notation, find interface{}) (*report, error) {

	c := metrics.New()
	depth, err := tree.Depth(c)
	if nil != err {
		return nil, err
	}

	r := &report{
		PayloadType:  tree.PayloadType(),
		Count:        tree.Count(),
		Depth:        depth,
		DepthMetrics: c,
		Metrics:      tree.Metrics(),
	}

	r.Traversal = lo.Map(notations, func(notation avl.Notation, _ int) traversal {
		return traversal{
			Notation: notation.String(),
			Payloads: tree.ToArray(notation),
		}
	})

	if nil != find {
		result, err := tree.Find(find)
		if nil != err {
			return nil, err
		}
		r.Find = &findReport{
			Value:   find,
			Found:   result.Found(),
			Metrics: result.Metrics,
		}
	}
	return r, nil
}

// convert command-line arguments into payloads
func argumentValues(arguments []string, numeric bool) (interface{}, error) {
	if !numeric {
		return arguments, nil
	}
	values := make([]float64, len(arguments))
	for i, s := range arguments {
		f, err := strconv.ParseFloat(s, 64)
		if nil != err {
			return nil, err
		}
		values[i] = f
	}
	return values, nil
}

// a Lua empty table arrives as an empty map rather than a list
func normaliseValues(values interface{}) interface{} {
	v := reflect.ValueOf(values)
	if reflect.Map == v.Kind() && 0 == v.Len() {
		return []interface{}{}
	}
	return values
}

// the find option is a string; numeric trees need a number
func findValue(s string, numeric bool) (interface{}, error) {
	if !numeric {
		return s, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err {
		return nil, err
	}
	return f, nil
}

// notations to show: all three unless one was chosen
func selectNotations(name string) ([]avl.Notation, error) {
	if "" == name || "all" == name {
		return []avl.Notation{avl.Infix, avl.Prefix, avl.Postfix}, nil
	}
	notation, err := avl.ParseNotation(name)
	if nil != err {
		return nil, err
	}
	return []avl.Notation{notation}, nil
}
