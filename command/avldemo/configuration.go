// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// values inserted when neither arguments nor configuration give any
var defaultValues = []string{"k", "m", "u", "t", "v", "p"}

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// Configuration - configuration file data
//
// values may be any Lua value, anything but a list is rejected when
// the tree is built
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Notation      string               `gluamapper:"notation" json:"notation"`
	Values        interface{}          `gluamapper:"values" json:"values"`
	Find          interface{}          `gluamapper:"find" json:"find"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when no file is given
func defaultConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		Notation:      "",
		Values:        nil,
		Find:          nil,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultDataDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	if err := finishConfiguration(options); nil != err {
		return nil, err
	}
	return options, nil
}

// make paths absolute and create the log directory
func finishConfiguration(options *Configuration) error {

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0700)
}

// if not absolute, prepend the directory to make an absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
