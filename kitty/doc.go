// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty holds the kitty records, the id allocator and the
// parentage registry
//
// records in the Kitties pool are packed in the layout given by the
// schema version in the Metadata pool, and every function here reads
// and writes the current layout only; older layouts are rewritten by
// the migration package before any of these is called
package kitty
