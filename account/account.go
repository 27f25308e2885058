// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	nothingKeyLength = 2
)

// Account - base type for accounts
type Account struct {
	AccountInterface
}

// AccountInterface - methods for all account types
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// NothingAccount - just for debugging
type NothingAccount struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - this converts a Base58 encoded string and returns an account
//
// one of the specific account types are returned using the base "AccountInterface"
// interface type to allow individual methods to be called.
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariant, keyVariantLength := binary.Uvarint(accountDecoded)
	if keyVariantLength <= 0 || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return makeAccount(int(keyAlgorithm), 0 != keyVariant&testKeyCode, accountDecoded[keyVariantLength:checksumStart])
}

// AccountFromBytes - this converts a byte encoded buffer and returns an account
//
// this is the form accounts take as keys and values in the database
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := binary.Uvarint(accountBytes)
	if keyVariantLength <= 0 || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	if len(accountBytes)-keyVariantLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	return makeAccount(int(keyAlgorithm), 0 != keyVariant&testKeyCode, accountBytes[keyVariantLength:])
}

func makeAccount(algorithm int, isTest bool, key []byte) (*Account, error) {
	publicKey := make([]byte, len(key))
	copy(publicKey, key)

	switch algorithm {
	case ED25519:
		if len(publicKey) != ed25519.PublicKeySize {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	case Nothing:
		if nothingKeyLength != len(publicKey) {
			return nil, fault.InvalidKeyLength
		}
		return &Account{
			AccountInterface: &NothingAccount{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}, nil
	default:
		return nil, fault.InvalidKeyType
	}
}

// Derived - an account with no private key that holds pooled funds
//
// the public key is SHA3-256("modl" ++ id) so every node derives the
// same account from the same identifier
func Derived(id string, isTest bool) *Account {
	publicKey := sha3.Sum256(append([]byte("modl"), id...))
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      isTest,
			PublicKey: publicKey[:],
		},
	}
}

// UnmarshalText - convert string to account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - true if both refer to the same key on the same network
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// IsZero - returns true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	if nil == account || nil == account.AccountInterface {
		return true
	}
	for _, b := range account.PublicKeyBytes() {
		if 0 != b {
			return false
		}
	}
	return true
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	return encode(ED25519, account.Test, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}

// Nothing
// -------

// KeyType - key type code (see enumeration above)
func (account *NothingAccount) KeyType() int {
	return Nothing
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *NothingAccount) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// Bytes - byte slice for encoded key
func (account *NothingAccount) Bytes() []byte {
	return encode(Nothing, account.Test, account.PublicKey)
}

// String - base58 encoding of encoded key
func (account *NothingAccount) String() string {
	return toBase58(account.Bytes())
}

// MarshalText - convert an account to its Base58 JSON form
func (account NothingAccount) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account NothingAccount) IsTesting() bool {
	return account.Test
}

// key variant ++ public key
func encode(algorithm int, isTest bool, publicKey []byte) []byte {
	keyVariant := uint64(algorithm<<algorithmShift) | publicKeyCode
	if isTest {
		keyVariant |= testKeyCode
	}
	buffer := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buffer, keyVariant)
	return append(buffer[:n], publicKey...)
}

// append the checksum then encode
func toBase58(buffer []byte) string {
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}
