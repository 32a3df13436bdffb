// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimtrie/claimd/claim"
)

// fixed address table standing in for the local index
type addressTable map[string]string

func (a addressTable) ClaimAddress(claimId string) (string, bool) {
	address, ok := a[claimId]
	return address, ok
}

const testClaimId = "beef00000000000000000000000000000000cafe"

func testFormatter(height uint64) *claim.Formatter {
	return &claim.Formatter{
		Index:  addressTable{testClaimId: "bTESTaddress"},
		Height: func() uint64 { return height },
	}
}

func rawClaim() claim.Raw {
	return claim.Raw{
		"claimId": testClaimId,
		"name":    "example",
		"txid":    "aa" + "bb",
		"n":       json.Number("3"),
		"amount":  json.Number("100000000"),
		"height":  json.Number("95"),
		"value":   "Þß", // bytes de df
	}
}

func TestFormat(t *testing.T) {
	f := testFormatter(100)

	record, err := f.Format(rawClaim())
	assert.Nil(t, err, "wrong Format")
	assert.NotNil(t, record, "unexpected empty record")

	assert.Equal(t, "example", record.Name, "wrong name")
	assert.Equal(t, testClaimId, record.ClaimId, "wrong claim id")
	assert.Equal(t, "aabb", record.TxId, "wrong txid")
	assert.Equal(t, int64(3), record.NOut, "wrong nout")
	assert.Equal(t, json.Number("100000000"), record.Amount, "wrong amount")
	assert.Equal(t, int64(95), record.Height, "wrong height")
	assert.Equal(t, int64(6), record.Depth, "wrong depth") // 100 - 95 + 1
	assert.Equal(t, "dedf", record.Value, "wrong value hex")
	assert.Equal(t, "bTESTaddress", record.Address, "wrong address")
	assert.Empty(t, record.Supports, "supports must be empty")
	assert.Equal(t, int64(-1), record.ClaimSequence, "wrong default claim sequence")
	assert.Nil(t, record.NormalizedName, "normalized name must be omitted")
}

// the current key must win over the legacy alias for every aliased field
func TestFormatAliasPrecedence(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	raw["amount"] = json.Number("1")
	raw["nAmount"] = json.Number("2")
	raw["height"] = json.Number("10")
	raw["nHeight"] = json.Number("20")
	raw["effective amount"] = json.Number("3")
	raw["nEffectiveAmount"] = json.Number("4")
	raw["valid at height"] = json.Number("5")
	raw["nValidAtHeight"] = json.Number("6")

	record, err := f.Format(raw)
	assert.Nil(t, err, "wrong Format")
	assert.Equal(t, json.Number("1"), record.Amount, "legacy amount alias won")
	assert.Equal(t, int64(10), record.Height, "legacy height alias won")
	assert.Equal(t, json.Number("3"), record.EffectiveAmount, "legacy effective amount alias won")
	assert.Equal(t, json.Number("5"), record.ValidAtHeight, "legacy valid at height alias won")
}

func TestFormatLegacyAliasFallback(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	delete(raw, "amount")
	delete(raw, "height")
	raw["nAmount"] = json.Number("2")
	raw["nHeight"] = json.Number("20")

	record, err := f.Format(raw)
	assert.Nil(t, err, "wrong Format")
	assert.Equal(t, json.Number("2"), record.Amount, "legacy amount alias ignored")
	assert.Equal(t, int64(20), record.Height, "legacy height alias ignored")
}

func TestFormatEmptyRaw(t *testing.T) {
	f := testFormatter(100)

	record, err := f.Format(nil)
	assert.Nil(t, err, "wrong Format")
	assert.Nil(t, record, "empty raw must give empty record")

	record, err = f.Format(claim.Raw{})
	assert.Nil(t, err, "wrong Format")
	assert.Nil(t, record, "empty raw must give empty record")
}

// a claim the index does not know normalizes to an empty record no
// matter how complete the daemon-side fields are
func TestFormatUnknownToIndex(t *testing.T) {
	f := &claim.Formatter{
		Index:  addressTable{},
		Height: func() uint64 { return 100 },
	}

	record, err := f.Format(rawClaim())
	assert.Nil(t, err, "wrong Format")
	assert.Nil(t, record, "partial record fabricated for unindexed claim")
}

func TestFormatIdempotent(t *testing.T) {
	f := testFormatter(100)

	first, err := f.Format(rawClaim())
	assert.Nil(t, err, "wrong Format")
	second, err := f.Format(rawClaim())
	assert.Nil(t, err, "wrong Format")
	assert.Equal(t, first, second, "normalization not idempotent")
}

func TestFormatClaimSequence(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	raw["claim_sequence"] = json.Number("2")

	record, err := f.Format(raw)
	assert.Nil(t, err, "wrong Format")
	assert.Equal(t, int64(2), record.ClaimSequence, "wrong claim sequence")
}

func TestFormatNormalizedName(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	raw["normalized_name"] = "example"

	record, err := f.Format(raw)
	assert.Nil(t, err, "wrong Format")
	assert.NotNil(t, record.NormalizedName, "normalized name dropped")
	assert.Equal(t, "example", *record.NormalizedName, "wrong normalized name")
}

// legacy encoded multi byte text must decode to proper UTF-8
func TestFormatLegacyName(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	raw["name"] = "cafÃ©" // UTF-8 bytes of "café" seen as ISO-8859-1

	record, err := f.Format(raw)
	assert.Nil(t, err, "wrong Format")
	assert.Equal(t, "café", record.Name, "wrong decoded name")
}

func TestFormatMissingClaimId(t *testing.T) {
	f := testFormatter(100)

	raw := rawClaim()
	delete(raw, "claimId")

	_, err := f.Format(raw)
	assert.NotNil(t, err, "missing claim id not detected")
}

func TestFormatRoundTripJSON(t *testing.T) {
	f := testFormatter(100)

	record, err := f.Format(rawClaim())
	assert.Nil(t, err, "wrong Format")

	buffer, err := json.Marshal(record)
	assert.Nil(t, err, "wrong Marshal")
	assert.Contains(t, string(buffer), `"supports":[]`, "supports must marshal as empty list")
	assert.NotContains(t, string(buffer), "normalized_name", "absent normalized name must be omitted")
}
