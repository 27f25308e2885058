// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/storage"
)

// Kitty - the stored record
type Kitty struct {
	Genome genome.Genome `json:"genome"`
	Name   Name          `json:"name"`
}

// PackedLength - bytes in a record of the current layout
const PackedLength = genome.Length + NameLength

// Pack - the current layout: genome ++ name
func (k *Kitty) Pack() []byte {
	buffer := make([]byte, 0, PackedLength)
	buffer = append(buffer, k.Genome[:]...)
	return append(buffer, k.Name[:]...)
}

// Unpack - decode a record of the current layout
func Unpack(buffer []byte) (*Kitty, error) {
	if PackedLength != len(buffer) {
		return nil, fault.RecordDecodeFailure
	}
	k := &Kitty{}
	copy(k.Genome[:], buffer[:genome.Length])
	copy(k.Name[:], buffer[genome.Length:])
	return k, nil
}

// Get - read a kitty
func Get(r storage.Reader, id Id) (*Kitty, error) {
	buffer := r.Get(storage.Pool.Kitties, id.Bytes())
	if nil == buffer {
		return nil, fault.KittyNotFound
	}
	return Unpack(buffer)
}

// Exists - check for a kitty without decoding it
func Exists(r storage.Reader, id Id) bool {
	return r.Has(storage.Pool.Kitties, id.Bytes())
}

// Put - write a kitty in the current layout
func Put(trx storage.Transaction, id Id, k *Kitty) {
	trx.Put(storage.Pool.Kitties, id.Bytes(), k.Pack())
}
