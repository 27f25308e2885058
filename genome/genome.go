// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genome

import (
	"encoding/hex"

	"github.com/bitmark-inc/kittyd/fault"
)

// Length - number of bytes in a genome
const Length = 16

// Genome - the heritable bytes of a kitty
//
// represented as hex text for JSON encoding
// to convert to bytes just use g[:]
type Genome [Length]byte

// Mix - derive a child genome from two parents
//
// each bit is taken from a where the selector bit is 1 and from b
// where it is 0
func Mix(a Genome, b Genome, selector Genome) Genome {
	child := Genome{}
	for i := 0; i < Length; i += 1 {
		child[i] = a[i]&selector[i] | b[i]&^selector[i]
	}
	return child
}

// FromBytes - convert and validate a binary byte slice to a genome
func FromBytes(g *Genome, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidGenomeLength
	}
	copy(g[:], buffer)
	return nil
}

// String - hex string for use by the fmt package (for %s)
func (g Genome) String() string {
	return hex.EncodeToString(g[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (g Genome) GoString() string {
	return "<genome:" + hex.EncodeToString(g[:]) + ">"
}

// MarshalText - convert genome to hex text
func (g Genome) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, g[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a genome
func (g *Genome) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.InvalidGenomeLength
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(g[:], buffer)
	return nil
}
