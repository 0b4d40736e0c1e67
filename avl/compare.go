// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Item - a payload that supplies its own ordering
//
// Compare returns +1 if the receiver sorts after the argument, -1 if
// before and 0 if equal; the argument is always of the receiver's type
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// returns >0 if a > b, <0 if a < b and 0 for equality
type compareFunc func(a interface{}, b interface{}) int

// payload type of a tree, fixed by its first insertion
type payloadType struct {
	t       reflect.Type
	compare compareFunc
}

// determine the ordering to use for a payload
func payloadTypeOf(payload interface{}) (*payloadType, error) {
	t := reflect.TypeOf(payload)
	if nil == t || isNilValue(payload) {
		return nil, fault.ErrEmptyPayload
	}

	if _, ok := payload.(Item); ok {
		return &payloadType{t: t, compare: compareItems}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &payloadType{t: t, compare: compareStrings}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &payloadType{t: t, compare: compareInts}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &payloadType{t: t, compare: compareUints}, nil
	case reflect.Float32, reflect.Float64:
		return &payloadType{t: t, compare: compareFloats}, nil
	default:
		return nil, fault.ErrUnorderedPayload
	}
}

// true if the value has exactly the established type
func (k *payloadType) matches(value interface{}) bool {
	return k.t == reflect.TypeOf(value)
}

// the name of the established type
func (k *payloadType) String() string {
	return k.t.String()
}

func compareItems(a interface{}, b interface{}) int {
	return a.(Item).Compare(b)
}

func compareStrings(a interface{}, b interface{}) int {
	return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
}

func compareInts(a interface{}, b interface{}) int {
	x := reflect.ValueOf(a).Int()
	y := reflect.ValueOf(b).Int()
	switch {
	case x > y:
		return +1
	case x < y:
		return -1
	default:
		return 0
	}
}

func compareUints(a interface{}, b interface{}) int {
	x := reflect.ValueOf(a).Uint()
	y := reflect.ValueOf(b).Uint()
	switch {
	case x > y:
		return +1
	case x < y:
		return -1
	default:
		return 0
	}
}

// NaN compares equal to everything, so a second NaN is a duplicate
func compareFloats(a interface{}, b interface{}) int {
	x := reflect.ValueOf(a).Float()
	y := reflect.ValueOf(b).Float()
	switch {
	case x > y:
		return +1
	case x < y:
		return -1
	default:
		return 0
	}
}
