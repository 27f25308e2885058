// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/storage"
)

// SetCount - position the allocator
func SetCount(trx storage.Transaction, n uint32) {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, n)
	trx.Put(storage.Pool.Metadata, nextIdKey, buffer)
}
