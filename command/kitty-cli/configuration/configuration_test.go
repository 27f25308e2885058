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

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
)

func testAccount(fill byte, test bool) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = fill
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      test,
			PublicKey: publicKey,
		},
	}
}

func TestSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-cli")
	if !assert.Nil(t, err, "temp dir") {
		t.FailNow()
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "testing-kitty-cli.json")

	config := &configuration.Configuration{
		TestNet:     true,
		Connections: []string{"127.0.0.1:2130"},
	}
	alice := testAccount(0x0a, true)
	bob := testAccount(0x0b, true)

	assert.Nil(t, config.AddIdentity("bob", "second", bob), "add bob")
	assert.Nil(t, config.AddIdentity("alice", "first", alice), "add alice")
	assert.Equal(t, configuration.ErrIdentityNameAlreadyExists, config.AddIdentity("alice", "again", bob), "duplicate")
	assert.Equal(t, configuration.ErrWrongNetwork, config.AddIdentity("carol", "live", testAccount(0x0c, false)), "network")
	assert.Equal(t, "bob", config.DefaultIdentity, "first added is default")

	err = config.Save(fileName)
	assert.Nil(t, err, "save")

	loaded, err := configuration.Load(fileName)
	assert.Nil(t, err, "load")
	assert.Equal(t, config, loaded, "round trip")
	assert.Equal(t, []string{"alice", "bob"}, loaded.Names(), "names")

	a, err := loaded.Account("alice")
	assert.Nil(t, err, "account")
	assert.True(t, alice.Equal(a), "alice")

	_, err = loaded.Account("nobody")
	assert.Equal(t, configuration.ErrIdentityNameNotFound, err, "missing")
}

func TestLoadMissing(t *testing.T) {
	_, err := configuration.Load("/nonexistent/kitty-cli.json")
	assert.NotNil(t, err, "missing file")
}
