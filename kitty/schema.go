// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/storage"
)

// record layouts of the Kitties pool
const (
	Layout0 = 0 // genome
	Layout1 = 1 // genome ++ name[4]
	Layout2 = 2 // genome ++ name[8]

	CurrentLayout = Layout2
)

var schemaVersionKey = []byte("schema-version")

// SchemaVersion - layout of the stored records, absent reads as zero
func SchemaVersion(r storage.Reader) uint16 {
	buffer := r.Get(storage.Pool.Metadata, schemaVersionKey)
	if nil == buffer {
		return 0
	}
	if 2 != len(buffer) {
		logger.Panicf("kitty: corrupt schema version record: %x", buffer)
	}
	return binary.BigEndian.Uint16(buffer)
}

// SetSchemaVersion - queue a new version marker
func SetSchemaVersion(trx storage.Transaction, version uint16) {
	buffer := make([]byte, 2)
	binary.BigEndian.PutUint16(buffer, version)
	trx.Put(storage.Pool.Metadata, schemaVersionKey, buffer)
}
