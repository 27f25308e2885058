// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyListed                = ExistsError("kitty is already listed for sale")
	AlreadyOwned                 = ExistsError("buyer already owns the kitty")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateFileNotFound      = NotFoundError("certificate file not found")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationNotTable        = InvalidError("configuration must return a table")
	DatabaseIsNotSet             = ProcessError("database is not set")
	InsufficientFunds            = ProcessError("insufficient funds")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidGenomeLength          = LengthError("invalid genome length")
	InvalidIpAddress             = InvalidError("invalid IP Address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	KeyFileNotFound              = NotFoundError("key file not found")
	KittyIdOverflow              = ProcessError("kitty id overflow")
	KittyNotFound                = NotFoundError("kitty not found")
	MissingOwner                 = InvalidError("missing owner")
	MissingParameters            = InvalidError("missing parameters")
	NameTooLong                  = LengthError("name too long")
	NoOwner                      = NotFoundError("kitty has no owner")
	NotInitialised               = NotFoundError("not initialised")
	NotListed                    = NotFoundError("kitty is not listed for sale")
	NotOwner                     = InvalidError("caller is not the owner")
	NotPublicKey                 = RecordError("not a public key")
	ParentageAlreadyRecorded     = ExistsError("parentage already recorded")
	RateLimiting                 = InvalidError("rate limiting")
	RecordDecodeFailure          = RecordError("kitty record cannot be decoded")
	SameParent                   = InvalidError("cannot breed a kitty with itself")
	SchemaDowngrade              = InvalidError("database schema is newer than this program")
	SchemaMigrationRequired      = ProcessError("database schema migration required")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	UnsupportedSchemaVersion     = InvalidError("unsupported database schema version")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
