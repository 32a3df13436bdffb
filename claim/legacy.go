// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package claim

import (
	"encoding/hex"

	"github.com/claimtrie/claimd/fault"
)

// the daemon transports binary fields as strings with one character
// per byte (ISO-8859-1); the conversions below recover the bytes and
// are the only place this wire artifact is allowed to appear

// LegacyBytes - recover the raw bytes from a legacy encoded string
func LegacyBytes(s string) ([]byte, error) {
	buffer := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xff {
			return nil, fault.InvalidLegacyEncoding
		}
		buffer = append(buffer, byte(r))
	}
	return buffer, nil
}

// DecodeLegacyText - reinterpret a legacy encoded string as UTF-8 text
func DecodeLegacyText(s string) (string, error) {
	buffer, err := LegacyBytes(s)
	if nil != err {
		return "", err
	}
	return string(buffer), nil
}

// LegacyHex - hex encode the bytes behind a legacy encoded string
func LegacyHex(s string) (string, error) {
	buffer, err := LegacyBytes(s)
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}
