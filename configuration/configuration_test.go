// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
)

type rpcSettings struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type settings struct {
	Chain    string      `gluamapper:"chain"`
	Price    uint64      `gluamapper:"price"`
	Database string      `gluamapper:"database"`
	RPC      rpcSettings `gluamapper:"rpc"`
}

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if !assert.Nil(t, err, "temp dir") {
		t.FailNow()
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if !assert.Nil(t, err, "write config") {
		t.FailNow()
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.chain = var.chain or "kitty"
M.price = 5000
M.database = "kitty-" .. M.chain .. ".leveldb"
M.rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
return M
`)
	defer cleanup()

	s := settings{Price: 1}
	err := configuration.ParseConfigurationFile(fileName, &s, map[string]string{"chain": "local"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "local", s.Chain, "chain from variable")
	assert.Equal(t, uint64(5000), s.Price, "price")
	assert.Equal(t, "kitty-local.leveldb", s.Database, "database")
	assert.Equal(t, uint64(50), s.RPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.RPC.Listen, "rpc listen")
}

func TestParseConfigurationFileKeepsDefaults(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { chain = "testing" }`)
	defer cleanup()

	s := settings{Price: 1234, Database: "default.leveldb"}
	err := configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "testing", s.Chain, "chain")
	assert.Equal(t, uint64(1234), s.Price, "default price overwritten")
	assert.Equal(t, "default.leveldb", s.Database, "default database overwritten")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	fileName, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.Equal(t, fault.ConfigurationNotTable, err, "wrong error")
}

func TestParseConfigurationFileScriptError(t *testing.T) {
	fileName, cleanup := writeFile(t, `this is not lua`)
	defer cleanup()

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.NotNil(t, err, "syntax error not reported")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/kitty.leveldb", configuration.EnsureAbsolute("/data", "kitty.leveldb"), "relative path")
	assert.Equal(t, "/var/kitty.leveldb", configuration.EnsureAbsolute("/data", "/var/kitty.leveldb"), "absolute path")
	assert.Equal(t, "/data/kitty.leveldb", configuration.EnsureAbsolute("/data/x", "../kitty.leveldb"), "cleaned path")
}
