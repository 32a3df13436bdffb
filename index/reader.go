// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/claimtrie/claimd/chain"
	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/storage"
)

const (
	claimIdLength = 20

	defaultSearchLimit = 20
	maximumSearchLimit = 100
)

// Reader - one private read-only view onto the claim index
type Reader struct {
	conn *storage.Connection
}

// Open - open a private index connection
//
// the stored chain tag, when present, must match the configured
// chain so that a mainnet server cannot serve a testnet index
func Open(database string, chainName string) (*Reader, error) {

	if !chain.Valid(chainName) {
		return nil, fault.InvalidChain
	}

	conn, err := storage.Open(database, storage.ReadOnly)
	if nil != err {
		return nil, err
	}

	if stored := conn.State.Get(storage.ChainKey); nil != stored && string(stored) != chainName {
		_ = conn.Close()
		return nil, fault.WrongChain
	}

	return &Reader{conn: conn}, nil
}

// Close - release the private connection
func (r *Reader) Close() error {
	return r.conn.Close()
}

// one stored claim by its binary id
func (r *Reader) claim(claimId []byte) (*Entry, error) {
	data := r.conn.Claims.Get(claimId)
	if nil == data {
		return nil, nil
	}
	entry, _, err := UnpackEntry(data)
	return entry, err
}

// all claims competing for one normalized name, unsorted
func (r *Reader) claimsForName(name string) ([]*Entry, error) {
	list := r.conn.Names.Get([]byte(name))

	entries := make([]*Entry, 0, len(list)/claimIdLength)
	for len(list) >= claimIdLength {
		entry, err := r.claim(list[:claimIdLength])
		if nil != err {
			return nil, err
		}
		if nil != entry {
			entries = append(entries, entry)
		}
		list = list[claimIdLength:]
	}
	return entries, nil
}

// best claim first: highest effective amount, oldest breaks the tie
func byControl(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].EffectiveAmount != entries[j].EffectiveAmount {
			return entries[i].EffectiveAmount > entries[j].EffectiveAmount
		}
		return entries[i].Height < entries[j].Height
	})
}

// Search - find claims matching the criteria
//
// supported criteria: claim_id (exact 20 byte hex), name, limit,
// offset; the result is an opaque TLV payload
func (r *Reader) Search(criteria map[string]interface{}) ([]byte, error) {

	if claimId, ok := criteria["claim_id"]; ok {
		s, ok := claimId.(string)
		if !ok {
			return nil, fault.InvalidClaimId
		}
		binary, err := hex.DecodeString(s)
		if nil != err || claimIdLength != len(binary) {
			return nil, fault.InvalidClaimId
		}
		entry, err := r.claim(binary)
		if nil != err {
			return nil, err
		}
		if nil == entry {
			return PackClaims(nil), nil
		}
		return PackClaims([]*Entry{entry}), nil
	}

	name, ok := criteria["name"].(string)
	if !ok || "" == name {
		return nil, fault.MissingParameters
	}

	entries, err := r.claimsForName(strings.ToLower(name))
	if nil != err {
		return nil, err
	}
	byControl(entries)

	offset := criteriaInt(criteria, "offset", 0)
	limit := criteriaInt(criteria, "limit", defaultSearchLimit)
	if limit > maximumSearchLimit {
		limit = maximumSearchLimit
	}
	if offset < 0 || limit < 0 {
		return nil, fault.InvalidCount
	}

	if offset > len(entries) {
		offset = len(entries)
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}

	return PackClaims(entries), nil
}

// Resolve - find the claim each url refers to
//
// a bare name resolves to its controlling claim; a claim id or claim
// id prefix selects among the claims for the name; misses resolve to
// an empty resolution, never an error
func (r *Reader) Resolve(urls []string) ([]byte, error) {

	resolutions := make([]Resolution, 0, len(urls))

	for _, s := range urls {
		u, err := claim.ParseURL(s)
		if nil != err {
			return nil, err
		}

		entries, err := r.claimsForName(u.Name)
		if nil != err {
			return nil, err
		}
		byControl(entries)

		resolution := Resolution{URL: s}

	match:
		for _, entry := range entries {
			if "" == u.ClaimId || strings.HasPrefix(hex.EncodeToString(entry.ClaimId), u.ClaimId) {
				resolution.Claim = entry
				break match
			}
		}
		resolutions = append(resolutions, resolution)
	}

	return PackResolutions(resolutions), nil
}

// numeric criteria arrive as json numbers
func criteriaInt(criteria map[string]interface{}, key string, missing int) int {
	switch v := criteria[key].(type) {
	case nil:
		return missing
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case float64:
		return int(v)
	case int:
		return v
	default:
		return missing
	}
}
