// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

// Raw - one claim record exactly as the daemon returned it
type Raw map[string]interface{}

// ClaimId - the claim id field of a raw record
//
// second return is false when the daemon omitted it
func (r Raw) ClaimId() (string, bool) {
	claimId, ok := r["claimId"].(string)
	return claimId, ok
}

// HasValue - check the value field is present and non-empty
//
// a claim without a value is not a real published claim and is
// dropped before normalization is ever attempted
func (r Raw) HasValue() bool {
	value, ok := r["value"].(string)
	return ok && "" != value
}

// Record - the canonical claim shape served to clients
type Record struct {
	Name            string        `json:"name"`
	ClaimId         string        `json:"claim_id"`
	TxId            string        `json:"txid"`
	NOut            int64         `json:"nout"`
	Amount          interface{}   `json:"amount"`
	Depth           int64         `json:"depth"`
	Height          int64         `json:"height"`
	Value           string        `json:"value"`
	Address         string        `json:"address"`
	Supports        []interface{} `json:"supports"`
	EffectiveAmount interface{}   `json:"effective_amount"`
	ValidAtHeight   interface{}   `json:"valid_at_height"`
	ClaimSequence   int64         `json:"claim_sequence"`
	NormalizedName  *string       `json:"normalized_name,omitempty"`
}
