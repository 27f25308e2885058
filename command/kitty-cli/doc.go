// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// kitty-cli - command line client for kittyd
//
// named identities and the daemon connection are kept in:
//
//   $XDG_CONFIG_HOME/kitty-cli/NETWORK-kitty-cli.json
//
// e.g.
//
//   kitty-cli -n testing -i alice setup -c 127.0.0.1:2130 -d "first cat owner"
//   kitty-cli -n testing -i alice create -N Tom
//   kitty-cli -n testing transfer -f alice -t bob -k 0
package main
