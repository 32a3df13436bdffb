// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/fault"
)

func TestLegacyBytes(t *testing.T) {
	items := []struct {
		in       string
		expected []byte
	}{
		{"", []byte{}},
		{"abc", []byte{'a', 'b', 'c'}},
		{"Þß", []byte{0xde, 0xdf}},
		{"\x00\x7f", []byte{0x00, 0x7f}},
	}

	for i, item := range items {
		actual, err := claim.LegacyBytes(item.in)
		assert.Nil(t, err, "%d: wrong LegacyBytes", i)
		assert.Equal(t, item.expected, actual, "%d: wrong bytes", i)
	}
}

func TestLegacyBytesRejectsWideRunes(t *testing.T) {
	_, err := claim.LegacyBytes("名前")
	assert.Equal(t, fault.InvalidLegacyEncoding, err, "wrong error")
}

func TestDecodeLegacyText(t *testing.T) {
	// UTF-8 bytes of "café" transported one character per byte
	decoded, err := claim.DecodeLegacyText("cafÃ©")
	assert.Nil(t, err, "wrong DecodeLegacyText")
	assert.Equal(t, "café", decoded, "wrong decoded text")
}

func TestLegacyHex(t *testing.T) {
	encoded, err := claim.LegacyHex("Þß")
	assert.Nil(t, err, "wrong LegacyHex")
	assert.Equal(t, "dedf", encoded, "wrong hex")
}
