// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// test accounts
var (
	Owner1 = testAccount(0x01)
	Owner2 = testAccount(0x02)
	Owner3 = testAccount(0x03)
	Pool   = account.Derived("py/kitty", true)
)

func testAccount(fill byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = fill
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

// SetupTestLogger - log only critical messages to a file under the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - logger and an empty database
func SetupTestStorage() error {
	SetupTestLogger()
	return storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
}

// TeardownTestStorage - close the database and remove all files
func TeardownTestStorage() {
	storage.Finalise()
	TeardownTestLogger()
}

// CertificateFiles - names for a test certificate and key pair
// inside the test directory
func CertificateFiles() (string, string) {
	return filepath.Join(dir, "test.crt"), filepath.Join(dir, "test.key")
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
