// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the claim-index database
//
// the index is a single LevelDB database split into pools by a one
// byte prefix on every key:
//
//   C → claim metadata records (20 byte claim id → TLV record)
//   A → claim addresses (20 byte claim id → base58check payload)
//   N → name references (normalized name → list of 20 byte claim ids)
//   S → index state (height, chain)
//
// the query server only ever opens the database read-only; the block
// processor that builds the index runs as a separate program
package storage
