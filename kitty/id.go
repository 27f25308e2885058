// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// Id - kitty identifier, allocated sequentially from zero
type Id uint32

// metadata key of the allocator
var nextIdKey = []byte("next-kitty-id")

// Bytes - the big endian form used as a database key
func (id Id) Bytes() []byte {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// String - decimal form
func (id Id) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IdFromBytes - decode a database key
func IdFromBytes(buffer []byte) (Id, error) {
	if 4 != len(buffer) {
		return 0, fault.RecordDecodeFailure
	}
	return Id(binary.BigEndian.Uint32(buffer)), nil
}

// Count - the next id to be issued, which is also the number of
// kitties created
func Count(r storage.Reader) uint32 {
	buffer := r.Get(storage.Pool.Metadata, nextIdKey)
	if nil == buffer {
		return 0
	}
	if 4 != len(buffer) {
		logger.Panicf("kitty: corrupt next id record: %x", buffer)
	}
	return binary.BigEndian.Uint32(buffer)
}

// NextId - allocate an id inside the transaction
//
// fails without writing if the counter cannot be incremented
func NextId(trx storage.Transaction) (Id, error) {
	n := Count(trx)
	if math.MaxUint32 == n {
		return 0, fault.KittyIdOverflow
	}

	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, n+1)
	trx.Put(storage.Pool.Metadata, nextIdKey, buffer)

	return Id(n), nil
}

