// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io/ioutil"
	"math"
	mrand "math/rand"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

// to make sure that lots of duplicates are rejected without
// changing the tree
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"3630"}, {"1427"}, {"5843"}, {"9549"}, {"5433"},
		{"1274"}, {"9034"}, {"4724"}, {"6179"}, {"5072"},
		{"9272"}, {"4030"}, {"4205"}, {"3363"}, {"8582"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
		{"2791"}, {"1504"}, {"3469"}, {"9701"}, {"5077"},
		{"7928"}, {"7978"}, {"5383"}, {"4319"}, {"8197"},
		{"9227"}, {"1166"}, {"4216"}, {"0866"}, {"1791"},
		{"5395"}, {"4310"}, {"4452"}, {"6140"}, {"1494"},
		{"8859"}, {"3394"}, {"5507"}, {"7295"}, {"5408"},
		{"7789"}, {"8237"}, {"6990"}, {"6882"}, {"8243"},
		{"8894"}, {"4352"}, {"6727"}, {"7019"}, {"3126"},
		{"3102"}, {"2948"}, {"8242"}, {"5027"}, {"8892"},
		{"3492"}, {"1323"}, {"1101"}, {"4526"}, {"5177"},
		{"6175"}, {"6664"}, {"2742"}, {"6094"}, {"9877"},
		{"2534"}, {"2105"}, {"6588"}, {"9982"}, {"3696"},
		{"3480"}, {"2244"}, {"7487"}, {"2844"}, {"3199"},
		{"5829"}, {"6952"}, {"6915"}, {"0905"}, {"7615"},
	}

	doList(t, addList)
	doTraverse(t, addList)
	doFind(t, addList)
}

// add every item checking the tree after each step
func doList(t *testing.T, addList []stringItem) {

	unique := make(map[stringItem]struct{})
	tree := avl.New()

	for _, key := range addList {
		before := tree.Metrics()
		shape := tree.ToArray(avl.Prefix)

		err := tree.Add(key)

		if _, ok := unique[key]; ok {
			if fault.ErrDuplicateKey != err {
				t.Fatalf("duplicate: %q  error: %v", key, err)
			}
			assert.Equal(t, before, tree.Metrics(), "metrics changed by duplicate: %q", key)
			assert.Equal(t, shape, tree.ToArray(avl.Prefix), "shape changed by duplicate: %q", key)
			continue
		}
		if nil != err {
			t.Fatalf("add: %q  error: %v", key, err)
		}
		unique[key] = struct{}{}

		if !tree.CheckBalance() {
			depth := tree.Print(os.Stdout, true)
			t.Logf("depth: %d", depth)
			t.Fatalf("add: %q  inconsistent tree", key)
		}
	}

	if len(unique) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(unique))
	}
	if n := tree.Metrics().Get("insertion"); uint64(len(unique)) != n {
		t.Fatalf("insertion count: actual: %d  expected: %d", n, len(unique))
	}
}

// traverse the tree in all notations
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := avl.New()
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		err := tree.Add(key)
		if nil != err && fault.ErrDuplicateKey != err {
			t.Fatalf("add: %q  error: %v", key, err)
		}
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	infix := tree.ToArray(avl.Infix)
	if len(infix) != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", len(infix), len(expected))
	}
	for i, p := range infix {
		if p.(stringItem).s != expected[i] {
			t.Fatalf("infix[%d]: actual: %q  expected: %q", i, p, expected[i])
		}
	}

	prefix := tree.ToArray(avl.Prefix)
	postfix := tree.ToArray(avl.Postfix)
	assert.Len(t, prefix, len(expected))
	assert.Len(t, postfix, len(expected))
	assert.Equal(t, tree.Root().Payload(), prefix[0], "prefix must start at root")
	assert.Equal(t, tree.Root().Payload(), postfix[len(postfix)-1], "postfix must end at root")

	assert.Equal(t, stringItem{expected[0]}, tree.First().Payload())
	assert.Equal(t, stringItem{expected[len(expected)-1]}, tree.Last().Payload())
}

// search for every item and for some that are absent
func doFind(t *testing.T, addList []stringItem) {

	tree := avl.New()
	for _, key := range addList {
		_ = tree.Add(key)
	}

	depth, err := tree.Depth(nil)
	if nil != err {
		t.Fatalf("depth error: %v", err)
	}

	for _, key := range addList {
		r, err := tree.Find(key)
		if nil != err {
			t.Fatalf("find: %q  error: %v", key, err)
		}
		if !r.Found() {
			t.Fatalf("find: %q  not found", key)
		}
		if key != r.Node.Payload() {
			t.Fatalf("find: %q  returned: %q", key, r.Node.Payload())
		}
		d := r.Metrics.Get("depth")
		if d != r.Metrics.Get("searchLeft")+r.Metrics.Get("searchRight") {
			t.Fatalf("find: %q  inconsistent metrics: %s", key, r.Metrics)
		}
		if int(d) >= depth {
			t.Fatalf("find: %q  descended: %d  but tree depth: %d", key, d, depth)
		}
	}

	for _, key := range []stringItem{{""}, {"99999"}, {"x"}} {
		r, err := tree.Find(key)
		if nil != err {
			t.Fatalf("find: %q  error: %v", key, err)
		}
		if r.Found() {
			t.Fatalf("find: %q  unexpectedly found: %q", key, r.Node.Payload())
		}
		if 0 == r.Metrics.Get("depth") {
			t.Fatalf("find: %q  made no descent", key)
		}
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%04d", n%10000)}
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200)
	randomTree(t, 3400)
	randomTree(t, 5467)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100)
	}
}

func randomTree(t *testing.T, total int) {

	tree := avl.New()
	d := make([]stringItem, 0, total)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		err := tree.Add(key)
		if fault.ErrDuplicateKey == err {
			continue
		}
		if nil != err {
			t.Fatalf("add: %q  error: %v", key, err)
		}
		d = append(d, key)
	}

	if !tree.CheckBalance() {
		depth := tree.Print(os.Stdout, false)
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree")
	}

	// the walk along the higher branches must give the true height
	depth, err := tree.Depth(nil)
	if nil != err {
		t.Fatalf("depth error: %v", err)
	}
	if height := tree.Print(ioutil.Discard, false); height != depth {
		t.Fatalf("depth: %d  but height: %d", depth, height)
	}

	// AVL bound: h < 1.4405 log2(n + 2)
	limit := 1.4405 * math.Log2(float64(tree.Count()+2))
	if float64(depth) >= limit {
		t.Fatalf("depth: %d  exceeds AVL bound: %f", depth, limit)
	}

	doTraverse(t, d)
	doFind(t, d)
}

func TestFromArrayRoundTrip(t *testing.T) {
	values := mrand.Perm(500)

	tree, err := avl.FromArray(values)
	if nil != err {
		t.Fatalf("from array error: %v", err)
	}
	assert.True(t, tree.CheckBalance())
	assert.Equal(t, 500, tree.Count())
	assert.Equal(t, "int", tree.PayloadType())

	infix := tree.ToArray(avl.Infix)
	for i, v := range infix {
		if i != v.(int) {
			t.Fatalf("infix[%d]: actual: %v", i, v)
		}
	}
}
