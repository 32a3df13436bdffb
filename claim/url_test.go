// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claimtrie/claimd/claim"
)

func TestParseURL(t *testing.T) {
	items := []struct {
		in      string
		name    string
		claimId string
	}{
		{"example", "example", ""},
		{"Example", "example", ""},
		{"claim://example", "example", ""},
		{"example#beef", "example", "beef"},
		{"claim://example#beef00000000000000000000000000000000cafe", "example", "beef00000000000000000000000000000000cafe"},
		{"example#ABC", "example", "abc"},
	}

	for i, item := range items {
		u, err := claim.ParseURL(item.in)
		assert.Nil(t, err, "%d: wrong ParseURL: %q", i, item.in)
		assert.Equal(t, item.name, u.Name, "%d: wrong name", i)
		assert.Equal(t, item.claimId, u.ClaimId, "%d: wrong claim id", i)
	}
}

func TestParseURLInvalid(t *testing.T) {
	items := []string{
		"",
		"claim://",
		"#beef",
		"example#",
		"example#zz",
		"a/b",
		"example#beef00000000000000000000000000000000cafe00", // over 40 digits
	}

	for i, item := range items {
		_, err := claim.ParseURL(item)
		assert.NotNil(t, err, "%d: accepted invalid url: %q", i, item)
	}
}
