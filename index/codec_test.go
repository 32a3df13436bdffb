// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/index"
)

func testEntry() *index.Entry {
	return &index.Entry{
		ClaimId:         bytes.Repeat([]byte{0xbe}, 20),
		Name:            "gold",
		TxId:            bytes.Repeat([]byte{0x01}, 32),
		NOut:            3,
		Amount:          100000,
		EffectiveAmount: 250000,
		Height:          95,
		ValidAtHeight:   96,
	}
}

func TestEntryPackUnpack(t *testing.T) {
	e := testEntry()

	unpacked, rest, err := index.UnpackEntry(e.Pack())
	assert.NoError(t, err, "unpack error")
	assert.Empty(t, rest, "trailing bytes")
	assert.Equal(t, e, unpacked, "entry mismatch")
}

func TestUnpackEntryCorrupted(t *testing.T) {
	packed := testEntry().Pack()

	_, _, err := index.UnpackEntry(packed[:len(packed)-5])
	assert.Error(t, err, "truncated payload accepted")
	assert.True(t, fault.IsErrProcess(err), "wrong error class")
}

func TestEmptyResultSets(t *testing.T) {
	entries, err := index.UnpackClaims(index.PackClaims(nil))
	assert.NoError(t, err, "unpack error")
	assert.Empty(t, entries, "entries from empty payload")

	resolutions, err := index.UnpackResolutions(index.PackResolutions(nil))
	assert.NoError(t, err, "unpack error")
	assert.Empty(t, resolutions, "resolutions from empty payload")
}

func TestResolutionsPackUnpack(t *testing.T) {
	in := []index.Resolution{
		{URL: "claim://gold", Claim: testEntry()},
		{URL: "claim://missing"},
	}

	out, err := index.UnpackResolutions(index.PackResolutions(in))
	assert.NoError(t, err, "unpack error")
	assert.Equal(t, in, out, "resolutions mismatch")
	assert.Nil(t, out[1].Claim, "miss must carry no claim")
}
