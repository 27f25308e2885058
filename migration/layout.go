// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kitty"
)

// decode a record of an old layout into a current kitty
type upgrader func(buffer []byte) (*kitty.Kitty, error)

// the layouts that can be upgraded
var upgraders = map[uint16]upgrader{
	kitty.Layout0: fromLayout0,
	kitty.Layout1: fromLayout1,
}

// layout 0: genome(16)
//
// there was no name, so use the first bytes of the genome
func fromLayout0(buffer []byte) (*kitty.Kitty, error) {
	if genome.Length != len(buffer) {
		return nil, fault.RecordDecodeFailure
	}

	k := &kitty.Kitty{}
	copy(k.Genome[:], buffer)
	copy(k.Name[:], buffer[:kitty.NameLength])
	return k, nil
}

// layout 1: genome(16) ++ name(4)
//
// the short name is repeated to fill the name
const shortNameLength = 4

func fromLayout1(buffer []byte) (*kitty.Kitty, error) {
	if genome.Length+shortNameLength != len(buffer) {
		return nil, fault.RecordDecodeFailure
	}

	k := &kitty.Kitty{}
	copy(k.Genome[:], buffer[:genome.Length])
	short := buffer[genome.Length:]
	copy(k.Name[:shortNameLength], short)
	copy(k.Name[shortNameLength:], short)
	return k, nil
}
