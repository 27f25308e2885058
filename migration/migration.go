// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - rewrite kitty records stored in an older layout
//
// all records and the new schema version marker are written in one
// storage transaction, so the store is either fully migrated or not
// touched at all
package migration

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// number of records read from the pool at a time
const pageSize = 1000

// Migrate - bring the store up to the current layout
//
// returns the number of records rewritten; calling it on a current
// store does nothing
func Migrate() (int, error) {
	if !storage.IsInitialised() {
		return 0, fault.DatabaseIsNotSet
	}

	log := logger.New("migration")

	version := kitty.SchemaVersion(storage.Direct)
	target := uint16(kitty.CurrentLayout)

	if version == target {
		log.Debugf("schema version: %d is current", version)
		return 0, nil
	}

	if version > target {
		log.Criticalf("schema version: %d  newer than: %d", version, target)
		return 0, fault.SchemaDowngrade
	}

	upgrade, ok := upgraders[version]
	if !ok {
		log.Criticalf("schema version: %d  cannot be migrated", version)
		return 0, fault.UnsupportedSchemaVersion
	}

	log.Infof("migrating from layout: %d  to: %d", version, target)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	n, err := rewrite(log, trx, version, upgrade)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	kitty.SetSchemaVersion(trx, target)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	log.Infof("migrated: %d records to layout: %d", n, target)
	return n, nil
}

// queue the current layout of every record under its own key
func rewrite(log *logger.L, trx storage.Transaction, version uint16, upgrade upgrader) (int, error) {
	n := 0
	cursor := storage.Pool.Kitties.NewFetchCursor()
	for {
		items, err := cursor.Fetch(pageSize)
		if nil != err {
			return 0, err
		}
		if 0 == len(items) {
			return n, nil
		}

		for _, item := range items {
			id, err := kitty.IdFromBytes(item.Key)
			if nil != err {
				log.Criticalf("invalid key: %x", item.Key)
				return 0, err
			}

			k, err := upgrade(item.Value)
			if nil != err {
				log.Criticalf("kitty: %d  cannot be decoded as layout: %d  data: %x", id, version, item.Value)
				return 0, err
			}

			kitty.Put(trx, id, k)
			n += 1
		}
	}
}
