// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring kittyd services
//
// standard golang RPC services can be used on the client side to
// access these services, the services are:
//
//   Kitty.Create  Kitty.Breed     Kitty.Transfer  Kitty.List
//   Kitty.Purchase  Kitty.Get     Kitty.Balance   Kitty.Owned
//   Kitty.Listed  Node.Info
package rpc
