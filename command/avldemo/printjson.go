// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

func printJson(w io.Writer, title string, message interface{}) {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Fprintf(w, "%s\n", b)
	} else {
		fmt.Fprintf(w, "%s:\n%s\n", title, b)
	}
}

// plain text form of a report
func printText(w io.Writer, r *report) {
	fmt.Fprintf(w, "type:    %s\n", r.PayloadType)
	fmt.Fprintf(w, "count:   %d\n", r.Count)
	fmt.Fprintf(w, "depth:   %d  [%s]\n", r.Depth, r.DepthMetrics)
	for _, t := range r.Traversal {
		fmt.Fprintf(w, "%-8s %v\n", t.Notation+":", t.Payloads)
	}
	fmt.Fprintf(w, "metrics: %s\n", r.Metrics)
	if nil != r.Find {
		result := "not found"
		if r.Find.Found {
			result = "found"
		}
		fmt.Fprintf(w, "find:    %v %s [%s]\n", r.Find.Value, result, r.Find.Metrics)
	}
}
