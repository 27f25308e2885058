// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"bytes"

	"github.com/bitmark-inc/kittyd/fault"
)

// NameLength - bytes in a stored name
const NameLength = 8

// Name - fixed size name, zero padded
type Name [NameLength]byte

// NameFromString - pad a string into a name
func NameFromString(s string) (Name, error) {
	n := Name{}
	if len(s) > NameLength {
		return n, fault.NameTooLong
	}
	copy(n[:], s)
	return n, nil
}

// String - the name without its padding
func (n Name) String() string {
	return string(bytes.TrimRight(n[:], "\x00"))
}

// MarshalText - the name as text
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText - text to a padded name
func (n *Name) UnmarshalText(s []byte) error {
	name, err := NameFromString(string(s))
	if nil != err {
		return err
	}
	*n = name
	return nil
}
