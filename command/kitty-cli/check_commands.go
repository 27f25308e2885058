// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"
	"strings"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
)

// errors
var (
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredKittyId     = fault.InvalidError("kitty id is required")
	ErrInvalidCount        = fault.InvalidError("count must be positive")
	ErrKittyIdOutOfRange   = fault.InvalidError("kitty id out of range")
)

// map the network aliases to a chain name
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "", "kitty", "live":
		return chain.Kitty, nil
	case "testing", "test":
		return chain.Testing, nil
	case "local":
		return chain.Local, nil
	default:
		return "", fault.InvalidChain
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// connect is required, comma separated HOST:PORT list
func checkConnect(connect string) ([]string, error) {
	connections := []string{}
	for _, c := range strings.Split(connect, ",") {
		c = strings.TrimSpace(c)
		if "" != c {
			connections = append(connections, c)
		}
	}
	if 0 == len(connections) {
		return nil, ErrRequiredConnect
	}
	return connections, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// kitty name is optional but must fit the record
func checkKittyName(name string) (string, error) {
	if _, err := kitty.NameFromString(name); nil != err {
		return "", err
	}
	return name, nil
}

// kitty id is required as flags default to -1
func checkKittyId(id int64) (kitty.Id, error) {
	if id < 0 {
		return 0, ErrRequiredKittyId
	}
	if id > math.MaxUint32 {
		return 0, ErrKittyIdOutOfRange
	}
	return kitty.Id(id), nil
}

func checkCount(count int) (int, error) {
	if count <= 0 {
		return 0, ErrInvalidCount
	}
	return count, nil
}

// an identity name from the config file, or a Base58 account
func checkAccount(nameOrAccount string, config *configuration.Configuration) (string, *account.Account, error) {
	if "" == nameOrAccount {
		return "", nil, ErrRequiredIdentity
	}

	if acc, err := config.Account(nameOrAccount); nil == err {
		return nameOrAccount, acc, nil
	}

	acc, err := account.AccountFromBase58(nameOrAccount)
	if nil != err {
		return "", nil, err
	}
	if acc.IsTesting() != config.TestNet {
		return "", nil, fault.WrongNetworkForPublicKey
	}
	return nameOrAccount, acc, nil
}

// file or directory exists
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
