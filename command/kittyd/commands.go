// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/beacon"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kennel"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/migration"
	"github.com/bitmark-inc/kittyd/rpc/certificate"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	seedFilename = "kitty.seed"
	seedLength   = 32
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-seed", "seed":
		seedFile := getFilenameWithDirectory(arguments, seedFilename)
		if err := makeSeedFile(seedFile); nil != err {
			fmt.Printf("generate seed: %q error: %s\n", seedFile, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated seed: %q\n", seedFile)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false

	case "migrate", "credit", "kitty", "k":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-seed [DIR]             (seed)   - create randomness seed in: %q\n", "DIR/"+seedFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  migrate                             - rewrite kitty records to the current layout\n")
		fmt.Printf("\n")

		fmt.Printf("  credit ACCOUNT AMOUNT               - add funds to a ledger account\n")
		fmt.Printf("\n")

		fmt.Printf("  kitty ID                   (k)      - display a kitty as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can
// access and/or change the kitty records
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "migrate":
		n, err := migration.Migrate()
		if nil != err {
			exitwithstatus.Message("migration error: %s", err)
		}
		fmt.Printf("migrated: %d records  schema version: %d\n", n, kitty.SchemaVersion(storage.Direct))

	case "credit":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing account and amount arguments")
		}
		owner, amount, err := parseCredit(arguments[0], arguments[1], chain.IsTesting(options.Chain))
		if nil != err {
			exitwithstatus.Message("credit error: %s", err)
		}
		total, err := credit(owner, amount)
		if nil != err {
			exitwithstatus.Message("credit error: %s", err)
		}
		log.Infof("credit: %s  amount: %d  balance: %d", owner, amount, total)
		fmt.Printf("account: %s  balance: %d\n", owner, total)

	case "kitty", "k":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing kitty id argument")
		}
		n, err := strconv.ParseUint(arguments[0], 10, 32)
		if nil != err {
			exitwithstatus.Message("error in kitty id: %s", err)
		}

		k, err := kennel.New(kennel.Configuration{
			Price:    options.Kennel.Price,
			Pool:     account.Derived(options.Kennel.PoolId, chain.IsTesting(options.Chain)),
			Source:   beacon.Fixed{},
			Currency: balance.Ledger{},
		})
		if nil != err {
			exitwithstatus.Message("kennel error: %s", err)
		}
		info, err := k.Info(kitty.Id(n))
		if nil != err {
			exitwithstatus.Message("kitty: %d  error: %s", n, err)
		}
		s, err := json.MarshalIndent(info, "", "  ")
		if nil != err {
			exitwithstatus.Message("kitty JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// validate the arguments of the credit command
func parseCredit(accountText string, amountText string, isTesting bool) (*account.Account, uint64, error) {
	owner, err := account.AccountFromBase58(accountText)
	if nil != err {
		return nil, 0, err
	}
	if owner.IsTesting() != isTesting {
		return nil, 0, fault.WrongNetworkForPublicKey
	}

	amount, err := strconv.ParseUint(amountText, 10, 64)
	if nil != err || 0 == amount {
		return nil, 0, fault.InvalidAmount
	}
	return owner, amount, nil
}

// add funds in a single transaction and return the new balance
func credit(owner *account.Account, amount uint64) (uint64, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	if err := balance.Credit(trx, owner, amount); nil != err {
		trx.Abort()
		return 0, err
	}
	if err := trx.Commit(); nil != err {
		return 0, err
	}
	return balance.Get(storage.Direct, owner), nil
}

// write a new random seed as hex
func makeSeedFile(fileName string) error {
	if configuration.EnsureFileExists(fileName) {
		return fault.KeyFileAlreadyExists
	}

	seed := make([]byte, seedLength)
	if _, err := rand.Read(seed); nil != err {
		return err
	}

	return ioutil.WriteFile(fileName, []byte(hex.EncodeToString(seed)+"\n"), 0600)
}

// read the seed file, or make a random seed if none is configured
func readSeed(fileName string) ([]byte, error) {
	if "" == fileName {
		seed := make([]byte, seedLength)
		_, err := rand.Read(seed)
		return seed, err
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if nil != err {
		return nil, err
	}
	if 0 == len(seed) {
		return nil, fault.MissingParameters
	}
	return seed, nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
