// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = kitty id as big endian uint32 (4 bytes)
// 4. owner        = account bytes (key type ++ public key)
// 5. amount       = big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Kitties:
//
//   K ++ id                    - kitty record
//                                data: genome(16) ++ name(8)      (layout 2)
//                                data: genome(16) ++ name(4)      (layout 1)
//                                data: genome(16)                 (layout 0)
//
// Ownership:
//
//   O ++ id                    - current owner
//                                data: owner
//
// Parentage:
//
//   P ++ id                    - parents of a bred kitty, written once
//                                data: id ++ id
//
// Marketplace:
//
//   L ++ id                    - kitty is listed for sale
//                                data: (empty)
//
// Balances:
//
//   B ++ owner                 - ledger balance
//                                data: amount
//
// Metadata:
//
//   M ++ "next-kitty-id"       - next id to allocate
//                                data: id
//   M ++ "schema-version"      - layout of the kitty records
//                                data: big endian uint16 (2 bytes)
//
// Testing:
//   Z ++ key                   - testing data
package storage
