// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fromName, from, err := m.account(c, "from")
	if nil != err {
		return err
	}

	toName, to, err := checkAccount(c.String("to"), m.config)
	if nil != err {
		return err
	}

	id, err := checkKittyId(c.Int64("kitty"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", fromName)
		fmt.Fprintf(m.e, "to: %s\n", toName)
		fmt.Fprintf(m.e, "kitty: %d\n", id)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(from, to, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := m.account(c, "owner")
	if nil != err {
		return err
	}

	id, err := checkKittyId(c.Int64("kitty"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "kitty: %d\n", id)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(owner, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, buyer, err := m.account(c, "buyer")
	if nil != err {
		return err
	}

	id, err := checkKittyId(c.Int64("kitty"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "buyer: %s\n", name)
		fmt.Fprintf(m.e, "kitty: %d\n", id)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Purchase(buyer, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
