// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
)

// Reader - read access to the pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - a batch of writes over all pools that commits atomically
//
// reads made through the transaction see its own pending writes
type Transaction interface {
	Reader
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - the database transaction
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - start a transaction, only one may be open at a time
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - queue a write
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - queue a write of a big endian uint64
func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - queue a removal
func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read through the pending writes
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read a uint64 through the pending writes
func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check through the pending writes
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write all pending data in one batch
func (t *TransactionImpl) Commit() error {
	err := t.access.Commit()
	if nil != err {
		logger.Criticalf("storage commit error: %s", err)
	}
	return err
}

// Abort - discard all pending data
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}

// InUse - is the transaction open
func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}

type direct struct{}

// Direct - a Reader that goes straight to the pools
//
// only valid while no transaction is open, otherwise its pending
// writes are visible
var Direct Reader = direct{}

func (direct) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (direct) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (direct) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}
