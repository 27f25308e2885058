// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
)

// a fresh key pair; only the account is kept
type generatedKey struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"privateKey"`
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connections, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	fingerprint := c.String("fingerprint")

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %v\n", connections)
		fmt.Fprintf(m.e, "fingerprint: %s\n", fingerprint)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	m.config = &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         m.testnet,
		Connections:     connections,
		Fingerprint:     fingerprint,
		Identities:      make(map[string]configuration.Identity),
	}

	err = addIdentity(m, name, description, c.String("account"))
	if nil != err {
		return err
	}

	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	err = addIdentity(m, name, description, c.String("account"))
	if nil != err {
		return err
	}

	m.config.DefaultIdentity = name
	m.save = true
	return nil
}

func runAccounts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type entry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Account     string `json:"account"`
		Default     bool   `json:"default,omitempty"`
	}

	list := make([]entry, 0, len(m.config.Identities))
	for _, name := range m.config.Names() {
		id := m.config.Identities[name]
		list = append(list, entry{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Default:     name == m.config.DefaultIdentity,
		})
	}

	return printJson(m.w, list)
}

// add an existing account, or generate a key pair and add its account
func addIdentity(m *metadata, name string, description string, existing string) error {

	if "" != existing {
		acc, err := account.AccountFromBase58(existing)
		if nil != err {
			return err
		}
		return m.config.AddIdentity(name, description, acc)
	}

	key, err := generateKey(m.testnet)
	if nil != err {
		return err
	}

	err = m.config.AddIdentity(name, description, key.Account)
	if nil != err {
		return err
	}

	// the private key is not stored
	return printJson(m.w, key)
}

func generateKey(testnet bool) (*generatedKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}

	return &generatedKey{
		Account: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      testnet,
				PublicKey: publicKey,
			},
		},
		PrivateKey: hex.EncodeToString(privateKey),
	}, nil
}
