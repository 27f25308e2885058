// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
)

// connect to one of the configured kittyd
func (m *metadata) connect() (*rpccalls.Client, error) {
	connect := m.config.Connections[m.connectionOffset]
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", connect)
	}
	return rpccalls.NewClient(connect, m.config.Fingerprint, m.verbose, m.e)
}

// the named flag, falling back to the global identity then the default
func (m *metadata) account(c *cli.Context, flag string) (string, *account.Account, error) {
	nameOrAccount := c.String(flag)
	if "" == nameOrAccount {
		nameOrAccount = c.GlobalString("identity")
	}
	if "" == nameOrAccount {
		nameOrAccount = m.config.DefaultIdentity
	}
	return checkAccount(nameOrAccount, m.config)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := m.account(c, "owner")
	if nil != err {
		return err
	}

	kittyName, err := checkKittyName(c.String("name"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "name: %q\n", kittyName)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(owner, kittyName)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := m.account(c, "owner")
	if nil != err {
		return err
	}

	parentA, err := checkKittyId(c.Int64("parent-a"))
	if nil != err {
		return err
	}
	parentB, err := checkKittyId(c.Int64("parent-b"))
	if nil != err {
		return err
	}

	kittyName, err := checkKittyName(c.String("name"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "parents: %d %d\n", parentA, parentB)
		fmt.Fprintf(m.e, "name: %q\n", kittyName)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(&rpccalls.BreedData{
		Owner:   owner,
		ParentA: parentA,
		ParentB: parentB,
		Name:    kittyName,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId(c.Int64("kitty"))
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
