// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// errors
var (
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrWrongNetwork              = fault.InvalidError("account is on the wrong network")
)

// Configuration - the JSON file of a kitty-cli network
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connections     []string            `json:"connections"`
	Fingerprint     string              `json:"fingerprint,omitempty"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - a named account
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
}

// Load - read a configuration file
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write the configuration, replacing any existing file
func (config *Configuration) Save(filename string) error {

	b, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}

	tempname := filename + ".new"
	f, err := os.OpenFile(tempname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return err
	}

	_, err = f.Write(append(b, '\n'))
	f.Close()
	if nil != err {
		_ = os.Remove(tempname)
		return err
	}
	return os.Rename(tempname, filename)
}

// Account - the account of a named identity
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}
	return account.AccountFromBase58(id.Account)
}

// AddIdentity - record a new named account
func (config *Configuration) AddIdentity(name string, description string, acc *account.Account) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}
	if acc.IsTesting() != config.TestNet {
		return ErrWrongNetwork
	}

	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	config.Identities[name] = Identity{
		Description: description,
		Account:     acc.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}
	return nil
}

// Names - sorted identity names
func (config *Configuration) Names() []string {
	names := make([]string, 0, len(config.Identities))
	for name := range config.Identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
