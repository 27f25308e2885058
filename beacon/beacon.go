// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package beacon - randomness for new genomes
//
// a Source supplies a seed and Draw condenses the seed, the caller and
// a call index into the 16 bytes of a genome or breeding selector
package beacon

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/genome"
	"github.com/bitmark-inc/logger"
)

// Source - supplier of seeds
type Source interface {
	Seed() []byte
}

// Draw - BLAKE2b-128(seed ++ owner ++ index)
//
// the same inputs always give the same genome
func Draw(seed []byte, owner *account.Account, index uint64) genome.Genome {
	h, err := blake2b.New(genome.Length, nil)
	logger.PanicIfError("beacon.Draw", err)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, index)

	h.Write(seed)
	h.Write(owner.Bytes())
	h.Write(n)

	g := genome.Genome{}
	copy(g[:], h.Sum(nil))
	return g
}

// Fixed - a source that always gives the same seed
type Fixed []byte

// Seed - the fixed value
func (f Fixed) Seed() []byte {
	return f
}

// Rolling - a source whose seed is replaced by its SHA3-256 digest
// after every use
type Rolling struct {
	sync.Mutex
	seed [32]byte
}

// NewRolling - start from the digest of the initial bytes
func NewRolling(initial []byte) *Rolling {
	return &Rolling{
		seed: sha3.Sum256(initial),
	}
}

// Seed - the current seed, then advance
func (r *Rolling) Seed() []byte {
	r.Lock()
	defer r.Unlock()

	s := make([]byte, len(r.seed))
	copy(s, r.seed[:])
	r.seed = sha3.Sum256(r.seed[:])
	return s
}
