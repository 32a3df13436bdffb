// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"encoding/binary"

	"github.com/learn-decentralized-systems/toytlv"

	"github.com/claimtrie/claimd/fault"
)

// TLV record types
//
// a result payload is a plain concatenation of C or U records; an
// empty payload is a valid empty result set
//
//   C  one claim entry
//   U  one resolution        (url record + optional claim entry)
//   I  claim id              (20 bytes)
//   N  name                  (UTF-8)
//   T  transaction id        (32 bytes)
//   O  output index          (big endian u64)
//   A  amount                (big endian u64)
//   E  effective amount      (big endian u64)
//   H  height                (big endian u64)
//   V  valid-at-height       (big endian u64)
//   S  url string            (UTF-8)

// Entry - one indexed claim as stored in the claims pool
type Entry struct {
	ClaimId         []byte
	Name            string
	TxId            []byte
	NOut            uint64
	Amount          uint64
	EffectiveAmount uint64
	Height          uint64
	ValidAtHeight   uint64
}

// Resolution - the outcome of resolving one url
//
// Claim is nil when nothing matched
type Resolution struct {
	URL   string
	Claim *Entry
}

func packUint(lit byte, value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return toytlv.Record(lit, buffer)
}

func takeUint(lit byte, data []byte) (uint64, []byte, error) {
	body, rest := toytlv.Take(lit, data)
	if nil == body || 8 != len(body) {
		return 0, nil, fault.CorruptedPayload
	}
	return binary.BigEndian.Uint64(body), rest, nil
}

// Pack - serialize one claim entry
func (e *Entry) Pack() []byte {
	return toytlv.Record('C',
		toytlv.Record('I', e.ClaimId),
		toytlv.Record('N', []byte(e.Name)),
		toytlv.Record('T', e.TxId),
		packUint('O', e.NOut),
		packUint('A', e.Amount),
		packUint('E', e.EffectiveAmount),
		packUint('H', e.Height),
		packUint('V', e.ValidAtHeight),
	)
}

// UnpackEntry - decode one claim entry
func UnpackEntry(data []byte) (*Entry, []byte, error) {
	body, rest := toytlv.Take('C', data)
	if nil == body {
		return nil, nil, fault.CorruptedPayload
	}

	e := &Entry{}

	e.ClaimId, body = toytlv.Take('I', body)
	if nil == e.ClaimId {
		return nil, nil, fault.CorruptedPayload
	}

	name, body := toytlv.Take('N', body)
	if nil == name {
		return nil, nil, fault.CorruptedPayload
	}
	e.Name = string(name)

	e.TxId, body = toytlv.Take('T', body)
	if nil == e.TxId {
		return nil, nil, fault.CorruptedPayload
	}

	var err error
	if e.NOut, body, err = takeUint('O', body); nil != err {
		return nil, nil, err
	}
	if e.Amount, body, err = takeUint('A', body); nil != err {
		return nil, nil, err
	}
	if e.EffectiveAmount, body, err = takeUint('E', body); nil != err {
		return nil, nil, err
	}
	if e.Height, body, err = takeUint('H', body); nil != err {
		return nil, nil, err
	}
	if e.ValidAtHeight, _, err = takeUint('V', body); nil != err {
		return nil, nil, err
	}

	return e, rest, nil
}

// PackClaims - serialize a search result set
func PackClaims(entries []*Entry) []byte {
	packed := []byte{}
	for _, e := range entries {
		packed = append(packed, e.Pack()...)
	}
	return packed
}

// UnpackClaims - decode a search result set
func UnpackClaims(data []byte) ([]*Entry, error) {
	entries := []*Entry{}
	for len(data) > 0 {
		e, rest, err := UnpackEntry(data)
		if nil != err {
			return nil, err
		}
		entries = append(entries, e)
		data = rest
	}
	return entries, nil
}

// PackResolutions - serialize a resolve result set
func PackResolutions(resolutions []Resolution) []byte {
	packed := []byte{}
	for _, r := range resolutions {
		parts := [][]byte{toytlv.Record('S', []byte(r.URL))}
		if nil != r.Claim {
			parts = append(parts, r.Claim.Pack())
		}
		packed = append(packed, toytlv.Record('U', parts...)...)
	}
	return packed
}

// UnpackResolutions - decode a resolve result set
func UnpackResolutions(data []byte) ([]Resolution, error) {
	resolutions := []Resolution{}
	for len(data) > 0 {
		var item []byte
		item, data = toytlv.Take('U', data)
		if nil == item {
			return nil, fault.CorruptedPayload
		}

		url, rest := toytlv.Take('S', item)
		if nil == url {
			return nil, fault.CorruptedPayload
		}

		r := Resolution{URL: string(url)}
		if len(rest) > 0 {
			e, _, err := UnpackEntry(rest)
			if nil != err {
				return nil, err
			}
			r.Claim = e
		}
		resolutions = append(resolutions, r)
	}
	return resolutions, nil
}
