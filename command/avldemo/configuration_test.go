// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func tempDirectory(t *testing.T) string {
	dir, err := ioutil.TempDir("", "avldemo")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func TestSampleConfiguration(t *testing.T) {
	dir := tempDirectory(t)
	sample, err := ioutil.ReadFile("avldemo.conf.sample")
	require.NoError(t, err)
	fileName := writeFile(t, dir, "avldemo.conf", string(sample))

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(conf.DataDirectory))
	assert.Equal(t, "all", conf.Notation)
	assert.Equal(t, []interface{}{"k", "m", "u", "t", "v", "p"}, conf.Values)
	assert.Equal(t, "t", conf.Find)
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), conf.Logging.Directory)
	assert.Equal(t, defaultLogFile, conf.Logging.File)
	assert.Equal(t, "info", conf.Logging.Levels["main"])

	info, err := os.Stat(conf.Logging.Directory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	tree, err := avl.FromArray(normaliseValues(conf.Values))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"k", "m", "p", "t", "u", "v"}, tree.ToArray(avl.Infix))
}

func TestNumericConfiguration(t *testing.T) {
	dir := tempDirectory(t)
	fileName := writeFile(t, dir, "numbers.conf", `return { values = { 5, 3, 8, 1 }, find = 8 }`)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	tree, err := avl.FromArray(normaliseValues(conf.Values))
	require.NoError(t, err)
	assert.Equal(t, "float64", tree.PayloadType())

	r, err := makeReport(tree, []avl.Notation{avl.Infix}, conf.Find)
	require.NoError(t, err)
	require.NotNil(t, r.Find)
	assert.True(t, r.Find.Found)
}

func TestBadValuesConfiguration(t *testing.T) {
	dir := tempDirectory(t)

	items := []struct {
		lua string
		err error
	}{
		{`return { values = "kmutvp" }`, fault.ErrConstructionNotSequence},
		{`return { values = 7 }`, fault.ErrConstructionNotSequence},
		{`return { values = true }`, fault.ErrConstructionNotSequence},
		{`return { values = { a = 1 } }`, fault.ErrConstructionNotSequence},
		{`return { values = { "a", 1 } }`, fault.ErrTypeMismatch},
		{`return { values = { "a", "a" } }`, fault.ErrDuplicateKey},
	}
	for i, item := range items {
		fileName := writeFile(t, dir, "bad.conf", item.lua)
		conf, err := getConfiguration(fileName)
		require.NoError(t, err, "%d", i)

		_, err = avl.FromArray(normaliseValues(conf.Values))
		assert.Equal(t, item.err, err, "%d: %s", i, item.lua)
	}
}

func TestEmptyValuesConfiguration(t *testing.T) {
	dir := tempDirectory(t)
	fileName := writeFile(t, dir, "empty.conf", `return { values = {} }`)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	tree, err := avl.FromArray(normaliseValues(conf.Values))
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestConfigurationErrors(t *testing.T) {
	dir := tempDirectory(t)

	_, err := getConfiguration(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)

	fileName := writeFile(t, dir, "blank.conf", `return { data_directory = "" }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)

	fileName = writeFile(t, dir, "nodir.conf", `return { data_directory = "/no/such/directory" }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)

	fileName = writeFile(t, dir, "logpath.conf", `return { logging = { file = "sub/x.log" } }`)
	_, err = getConfiguration(fileName)
	assert.Error(t, err)
}
