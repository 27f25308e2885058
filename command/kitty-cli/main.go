// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	save             bool
	testnet          bool
	verbose          bool
	connectionOffset int
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "create, breed and trade kitties on a kittyd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "network, n",
			Value:  "",
			Usage:  " connect to kittyd `NETWORK` [kitty|testing|local]",
			EnvVar: "KITTY_NETWORK",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
	}

	kittyFlag := cli.Int64Flag{
		Name:  "kitty, k",
		Value: -1,
		Usage: "*kitty `ID`",
	}
	startFlag := cli.Int64Flag{
		Name:  "start, s",
		Value: 0,
		Usage: " first kitty `ID` to consider",
	}
	countFlag := cli.IntFlag{
		Name:  "count, c",
		Value: 20,
		Usage: " maximum records to output `COUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise kitty-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*kittyd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: " expected SHA3-256 of the kittyd certificate `HEX`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " use an existing `ACCOUNT` instead of a new key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " use an existing `ACCOUNT` instead of a new key",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "accounts",
			Usage:  "list the identities in the config file",
			Action: runAccounts,
		},
		{
			Name:      "create",
			Usage:     "create a new kitty with a random genome",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: " kitty `NAME` up to 8 bytes",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "create a new kitty from two parents",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.Int64Flag{
					Name:  "parent-a, a",
					Value: -1,
					Usage: "*first parent kitty `ID`",
				},
				cli.Int64Flag{
					Name:  "parent-b, b",
					Value: -1,
					Usage: "*second parent kitty `ID`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: " kitty `NAME` up to 8 bytes",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*identity name or `ACCOUNT` to receive the kitty",
				},
				kittyFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "list",
			Usage:     "offer a kitty for sale at the fixed price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				kittyFlag,
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "purchase a listed kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				kittyFlag,
			},
			Action: runBuy,
		},
		{
			Name:      "show",
			Usage:     "display a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kittyFlag,
			},
			Action: runShow,
		},
		{
			Name:      "balance",
			Usage:     "display the funds of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "owned",
			Usage:     "list kitties owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				startFlag,
				countFlag,
			},
			Action: runOwned,
		},
		{
			Name:      "listed",
			Usage:     "list kitties for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				startFlag,
				countFlag,
			},
			Action: runListed,
		},
		{
			Name:   "info",
			Usage:  "display kittyd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return fmt.Errorf("network: %q can only be kitty/testing/local", c.GlobalString("network"))
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			testnet: chain.IsTesting(network),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}
			if 0 == len(configuration.Connections) {
				return ErrRequiredConnect
			}

			rand.Seed(time.Now().UnixNano())
			m.config = configuration
			m.testnet = configuration.TestNet
			m.connectionOffset = rand.Intn(len(configuration.Connections))
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := m.config.Save(m.file)
			if nil != err {
				fmt.Fprintf(e, "update config file failed with error: %s\n", err)
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
