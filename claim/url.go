// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/hex"
	"strings"

	"github.com/claimtrie/claimd/fault"
)

// Scheme - optional prefix on claim URLs
const Scheme = "claim://"

// URL - one parsed claim URL
//
// ClaimId is empty for a bare name, otherwise a hex claim id or a
// prefix of one selecting among the claims for the name
type URL struct {
	Name    string
	ClaimId string
}

// ParseURL - split a claim URL into its name and claim id parts
//
// accepted forms: name, name#id-prefix, with or without the scheme;
// the name is case folded, matching how the index stores it
func ParseURL(s string) (*URL, error) {

	s = strings.TrimPrefix(s, Scheme)
	if "" == s {
		return nil, fault.InvalidClaimURL
	}

	name := s
	claimId := ""
	if i := strings.IndexByte(s, '#'); i >= 0 {
		name = s[:i]
		claimId = strings.ToLower(s[i+1:])
		if "" == claimId || len(claimId) > 40 {
			return nil, fault.InvalidClaimURL
		}
		// must be even digits to decode, but a prefix may be odd;
		// validate digits only
		if _, err := hex.DecodeString(claimId + strings.Repeat("0", len(claimId)%2)); nil != err {
			return nil, fault.InvalidClaimURL
		}
	}

	if "" == name || strings.ContainsAny(name, "/#") {
		return nil, fault.InvalidClaimURL
	}

	return &URL{
		Name:    strings.ToLower(name),
		ClaimId: claimId,
	}, nil
}
