// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package claim - claim records and their normalization
//
// the chain daemon reports claims with historical field names and a
// one byte per character text encoding; this package converts such
// raw records into the canonical shape served to clients, merging in
// the owning address which only the local index knows
package claim
