// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - query side of the claim index
//
// a Reader owns one private read-only connection to the index
// database; every query worker holds exactly one Reader for its
// whole lifetime
//
// search and resolve results travel as an opaque TLV payload: the
// RPC layer only ever base64 encodes it for transport, clients own
// the decoding
package index
