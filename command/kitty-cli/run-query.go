// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := m.account(c, "owner")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, owner, err := m.account(c, "owner")
	if nil != err {
		return err
	}

	start, err := checkKittyId(c.Int64("start"))
	if nil != err {
		return err
	}

	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owned(owner, start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runListed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start, err := checkKittyId(c.Int64("start"))
	if nil != err {
		return err
	}

	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Listed(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.connect()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	type info struct {
		Connection string      `json:"_connection"`
		Node       interface{} `json:"node"`
	}

	return printJson(m.w, info{
		Connection: m.config.Connections[m.connectionOffset],
		Node:       response,
	})
}
