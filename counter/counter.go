// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters shared between goroutines
//
// used for the RPC connection count and for the call sequence index
// that is mixed into every randomness draw
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer that can be updated from any goroutine
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Next - add 1 to a counter, returns the value it had before
//
// successive calls return 0, 1, 2, … so the result can be used as
// a sequence index
func (ic *Counter) Next() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1) - 1
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
