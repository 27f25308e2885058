// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := ratelimit.New(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(l), "burst %d limited", i)
	}
}

func TestLimitN(t *testing.T) {
	l := ratelimit.New(1000, 10)

	assert.Nil(t, ratelimit.LimitN(l, 5, 100), "valid count limited")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 100), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 101, 100), "count above maximum")
}

func TestLimitNAboveBurst(t *testing.T) {
	l := ratelimit.New(1000, 10)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(l, 50, 100), "count above burst not rejected")
}
