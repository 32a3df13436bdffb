// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// AddressIndex - claim id → address lookups over one pool handle
//
// addresses are stored as the raw base58check payload and re-encoded
// to text on the way out
type AddressIndex struct {
	pool Handle
}

// NewAddressIndex - wrap a claim-address pool
func NewAddressIndex(pool Handle) AddressIndex {
	return AddressIndex{pool: pool}
}

// ClaimAddress - current address owning a claim
//
// second return is false when the claim is unknown to the index
func (a AddressIndex) ClaimAddress(claimId string) (string, bool) {
	key, err := hex.DecodeString(claimId)
	if nil != err || nil == a.pool {
		return "", false
	}
	raw := a.pool.Get(key)
	if nil == raw {
		return "", false
	}
	return base58.Encode(raw), true
}
