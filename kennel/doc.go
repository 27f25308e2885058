// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kennel - the public kitty operations
//
// every operation holds the kennel lock and runs in one storage
// transaction: all checks are made and all writes are queued in the
// transaction, then it is committed once; the first failure aborts
// it so the store is left exactly as it was
//
// a notification is sent to the configured bus only after a
// successful commit
package kennel
