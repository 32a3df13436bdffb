// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/json"
	"strconv"

	"github.com/claimtrie/claimd/fault"
)

// ordered candidate keys per logical field
//
// the daemon has used two naming schemes over its history; the
// current name is tried first, then the legacy alias - first present
// key wins
var (
	amountKeys          = []string{"amount", "nAmount"}
	heightKeys          = []string{"height", "nHeight"}
	effectiveAmountKeys = []string{"effective amount", "nEffectiveAmount"}
	validAtHeightKeys   = []string{"valid at height", "nValidAtHeight"}
)

// AddressGetter - the single index lookup normalization needs
type AddressGetter interface {
	ClaimAddress(claimId string) (string, bool)
}

// Formatter - normalizes raw daemon claims into canonical records
type Formatter struct {
	Index  AddressGetter
	Height func() uint64
}

// Format - convert one raw daemon claim to the canonical shape
//
// returns a nil record without error when the raw claim is empty or
// when the local index has no address for it: a claim the daemon
// knows but the index does not must surface as an empty record,
// never a partial one
func (f *Formatter) Format(raw Raw) (*Record, error) {

	if 0 == len(raw) {
		return nil, nil
	}

	claimId, ok := raw.ClaimId()
	if !ok {
		return nil, fault.MissingClaimId
	}

	name := ""
	if s, ok := raw["name"].(string); ok {
		decoded, err := DecodeLegacyText(s)
		if nil != err {
			return nil, err
		}
		name = decoded
	}

	address, ok := f.Index.ClaimAddress(claimId)
	if !ok {
		return nil, nil
	}

	value := ""
	if s, ok := raw["value"].(string); ok {
		encoded, err := LegacyHex(s)
		if nil != err {
			return nil, err
		}
		value = encoded
	}

	height := toInt64(firstOf(raw, heightKeys))

	record := &Record{
		Name:            name,
		ClaimId:         claimId,
		TxId:            stringField(raw, "txid"),
		NOut:            toInt64(raw["n"]),
		Amount:          toNumber(firstOf(raw, amountKeys)),
		Depth:           int64(f.Height()) - height + 1,
		Height:          height,
		Value:           value,
		Address:         address,
		Supports:        []interface{}{}, // daemon-side support aggregation is stubbed out
		EffectiveAmount: toNumber(firstOf(raw, effectiveAmountKeys)),
		ValidAtHeight:   toNumber(firstOf(raw, validAtHeightKeys)),
		ClaimSequence:   -1,
	}

	if sequence, ok := raw["claim_sequence"]; ok {
		record.ClaimSequence = toInt64(sequence)
	}

	if s, ok := raw["normalized_name"].(string); ok {
		decoded, err := DecodeLegacyText(s)
		if nil != err {
			return nil, err
		}
		record.NormalizedName = &decoded
	}

	return record, nil
}

// first present key wins; nil when no candidate is present
func firstOf(raw Raw, keys []string) interface{} {
	for _, key := range keys {
		if value, ok := raw[key]; ok {
			return value
		}
	}
	return nil
}

// pass numeric values through without loss of precision
func toNumber(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case json.Number:
		return v
	case int:
		return json.Number(strconv.FormatInt(int64(v), 10))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	case float64:
		return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return v
	}
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case json.Number:
		n, _ := v.Int64()
		return n
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func stringField(raw Raw, key string) string {
	s, _ := raw[key].(string)
	return s
}
