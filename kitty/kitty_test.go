// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

func setup(t *testing.T) {
	err := fixtures.SetupTestStorage()
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	fixtures.TeardownTestStorage()
}

func TestNextIdSequence(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Equal(t, uint32(0), kitty.Count(storage.Direct), "fresh counter not zero")

	trx, _ := storage.NewDBTransaction()
	for i := 0; i < 3; i += 1 {
		id, err := kitty.NextId(trx)
		assert.Nil(t, err, "next id error")
		assert.Equal(t, kitty.Id(i), id, "wrong id")
	}
	_ = trx.Commit()

	assert.Equal(t, uint32(3), kitty.Count(storage.Direct), "counter not above issued ids")
}

func TestNextIdAbortReleasesNothing(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	_, _ = kitty.NextId(trx)
	trx.Abort()

	assert.Equal(t, uint32(0), kitty.Count(storage.Direct), "aborted allocation persisted")
}

func TestNextIdOverflow(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	kitty.SetCount(trx, math.MaxUint32-1)

	id, err := kitty.NextId(trx)
	assert.Nil(t, err, "last id should be issued")
	assert.Equal(t, kitty.Id(math.MaxUint32-1), id, "wrong last id")

	_, err = kitty.NextId(trx)
	assert.Equal(t, fault.KittyIdOverflow, err, "counter wrapped")
	assert.Equal(t, uint32(math.MaxUint32), kitty.Count(trx), "failed allocation changed the counter")
	_ = trx.Commit()
}

func TestPutGet(t *testing.T) {
	setup(t)
	defer teardown()

	name, _ := kitty.NameFromString("tom")
	k := &kitty.Kitty{
		Genome: genome.Genome{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		Name:   name,
	}

	trx, _ := storage.NewDBTransaction()
	kitty.Put(trx, 7, k)
	assert.True(t, kitty.Exists(trx, 7), "pending kitty not visible")
	_ = trx.Commit()

	actual, err := kitty.Get(storage.Direct, 7)
	assert.Nil(t, err, "get error")
	assert.Equal(t, k, actual, "wrong kitty")

	_, err = kitty.Get(storage.Direct, 8)
	assert.Equal(t, fault.KittyNotFound, err, "absent kitty found")
	assert.False(t, kitty.Exists(storage.Direct, 8), "absent kitty exists")
}

func TestGetRejectsOldLayout(t *testing.T) {
	setup(t)
	defer teardown()

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.Kitties, kitty.Id(1).Bytes(), make([]byte, 20))
	_ = trx.Commit()

	_, err := kitty.Get(storage.Direct, 1)
	assert.Equal(t, fault.RecordDecodeFailure, err, "short record decoded")
}

func TestPackLayout(t *testing.T) {
	k := kitty.Kitty{
		Genome: genome.Genome{0xff, 0xfe},
		Name:   kitty.Name{'a', 'b'},
	}

	packed := k.Pack()
	assert.Equal(t, kitty.PackedLength, len(packed), "wrong length")
	assert.Equal(t, byte(0xff), packed[0], "genome not first")
	assert.Equal(t, byte('a'), packed[16], "name not after genome")

	unpacked, err := kitty.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, k, *unpacked, "round trip")
}

func TestName(t *testing.T) {
	n, err := kitty.NameFromString("12345678")
	assert.Nil(t, err, "eight bytes should fit")
	assert.Equal(t, "12345678", n.String(), "wrong name")

	_, err = kitty.NameFromString("123456789")
	assert.Equal(t, fault.NameTooLong, err, "long name accepted")

	n, _ = kitty.NameFromString("")
	assert.Equal(t, kitty.Name{}, n, "empty name not zero")

	buffer, _ := json.Marshal(kitty.Kitty{Name: kitty.Name{'f', 'e', 'l', 'i', 'x'}})
	assert.Contains(t, string(buffer), `"name":"felix"`, "wrong json name")
}

func TestParents(t *testing.T) {
	setup(t)
	defer teardown()

	_, found := kitty.GetParents(storage.Direct, 2)
	assert.False(t, found, "created kitty has parents")

	trx, _ := storage.NewDBTransaction()
	err := kitty.SetParents(trx, 2, kitty.Parents{A: 1, B: 0})
	assert.Nil(t, err, "set parents error")

	err = kitty.SetParents(trx, 2, kitty.Parents{A: 0, B: 1})
	assert.Equal(t, fault.ParentageAlreadyRecorded, err, "parentage overwritten")
	_ = trx.Commit()

	parents, found := kitty.GetParents(storage.Direct, 2)
	assert.True(t, found, "parents not found")
	assert.Equal(t, kitty.Parents{A: 1, B: 0}, parents, "parent order not preserved")
}

func TestSchemaVersion(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Equal(t, uint16(0), kitty.SchemaVersion(storage.Direct), "fresh version not zero")

	trx, _ := storage.NewDBTransaction()
	kitty.SetSchemaVersion(trx, kitty.CurrentLayout)
	_ = trx.Commit()

	assert.Equal(t, uint16(kitty.CurrentLayout), kitty.SchemaVersion(storage.Direct), "version not stored")
}
