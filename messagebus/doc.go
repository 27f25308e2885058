// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for the notifications raised
// by committed kitty operations
//
// sending never blocks: a full queue drops the message with a warning
package messagebus
