// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/migration"
	"github.com/bitmark-inc/kittyd/storage"
)

var g = genome.Genome{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f}

func setup(t *testing.T, version uint16, records map[kitty.Id][]byte) {
	err := fixtures.SetupTestStorage()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	trx, _ := storage.NewDBTransaction()
	if 0 != version {
		kitty.SetSchemaVersion(trx, version)
	}
	for id, data := range records {
		trx.Put(storage.Pool.Kitties, id.Bytes(), data)
	}
	_ = trx.Commit()
}

// all records of the Kitties pool
func dump(t *testing.T) []storage.Element {
	items, err := storage.Pool.Kitties.NewFetchCursor().Fetch(1000)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	return items
}

func layout1(name string) []byte {
	buffer := append([]byte{}, g[:]...)
	return append(buffer, name...)
}

func TestFreshStore(t *testing.T) {
	setup(t, 0, nil)
	defer fixtures.TeardownTestStorage()

	n, err := migration.Migrate()
	assert.Nil(t, err, "migrate error")
	assert.Equal(t, 0, n, "records rewritten")
	assert.Equal(t, uint16(kitty.CurrentLayout), kitty.SchemaVersion(storage.Direct), "version marker not written")
}

func TestMigrateLayout0(t *testing.T) {
	setup(t, kitty.Layout0, map[kitty.Id][]byte{
		0: g[:],
		1: make([]byte, 16),
	})
	defer fixtures.TeardownTestStorage()

	n, err := migration.Migrate()
	assert.Nil(t, err, "migrate error")
	assert.Equal(t, 2, n, "wrong count")

	k, err := kitty.Get(storage.Direct, 0)
	assert.Nil(t, err, "get error")
	assert.Equal(t, g, k.Genome, "genome changed")
	assert.Equal(t, kitty.Name{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17}, k.Name, "name not taken from genome")

	k, _ = kitty.Get(storage.Direct, 1)
	assert.Equal(t, kitty.Kitty{}, *k, "zero record not migrated")

	assert.Equal(t, uint16(kitty.CurrentLayout), kitty.SchemaVersion(storage.Direct), "version not updated")
}

func TestMigrateLayout1(t *testing.T) {
	setup(t, kitty.Layout1, map[kitty.Id][]byte{
		3: layout1("tom!"),
		9: layout1("abcd"),
	})
	defer fixtures.TeardownTestStorage()

	n, err := migration.Migrate()
	assert.Nil(t, err, "migrate error")
	assert.Equal(t, 2, n, "wrong count")

	k, _ := kitty.Get(storage.Direct, 3)
	assert.Equal(t, g, k.Genome, "genome changed")
	assert.Equal(t, "tom!tom!", k.Name.String(), "name not repeated")

	k, _ = kitty.Get(storage.Direct, 9)
	assert.Equal(t, "abcdabcd", k.Name.String(), "name not repeated")

	for _, item := range dump(t) {
		assert.Equal(t, kitty.PackedLength, len(item.Value), "record %x not in current layout", item.Key)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	setup(t, kitty.Layout1, map[kitty.Id][]byte{
		1: layout1("once"),
		2: layout1("twic"),
	})
	defer fixtures.TeardownTestStorage()

	_, err := migration.Migrate()
	assert.Nil(t, err, "first migrate error")
	once := dump(t)

	n, err := migration.Migrate()
	assert.Nil(t, err, "second migrate error")
	assert.Equal(t, 0, n, "second migrate rewrote records")
	assert.Equal(t, once, dump(t), "second migrate changed the store")

	k, _ := kitty.Get(storage.Direct, 1)
	assert.Equal(t, "onceonce", k.Name.String(), "name doubled again")
}

func TestDecodeFailureLeavesStoreUntouched(t *testing.T) {
	records := map[kitty.Id][]byte{
		1: layout1("good"),
		2: g[:], // layout 0 record in a layout 1 store
		3: layout1("also"),
	}
	setup(t, kitty.Layout1, records)
	defer fixtures.TeardownTestStorage()

	before := dump(t)

	n, err := migration.Migrate()
	assert.Equal(t, fault.RecordDecodeFailure, err, "bad record skipped")
	assert.Equal(t, 0, n, "count of failed migration")

	assert.Equal(t, before, dump(t), "store partially migrated")
	assert.Equal(t, uint16(kitty.Layout1), kitty.SchemaVersion(storage.Direct), "version changed")

	// the transaction was released
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction left open")
	trx.Abort()
}

func TestDowngradeRejected(t *testing.T) {
	setup(t, kitty.CurrentLayout+1, map[kitty.Id][]byte{
		1: make([]byte, 30),
	})
	defer fixtures.TeardownTestStorage()

	_, err := migration.Migrate()
	assert.Equal(t, fault.SchemaDowngrade, err, "newer schema accepted")
	assert.Equal(t, 30, len(dump(t)[0].Value), "record rewritten")
}

func TestCounterUntouched(t *testing.T) {
	setup(t, kitty.Layout0, map[kitty.Id][]byte{
		0: g[:],
	})
	defer fixtures.TeardownTestStorage()

	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, 1)
	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.Metadata, []byte("next-kitty-id"), buffer)
	_ = trx.Commit()

	_, err := migration.Migrate()
	assert.Nil(t, err, "migrate error")
	assert.Equal(t, uint32(1), kitty.Count(storage.Direct), "counter changed")
}

func TestWithoutDatabase(t *testing.T) {
	storage.Finalise()

	_, err := migration.Migrate()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "migrated without a database")
}
