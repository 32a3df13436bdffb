// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/claimtrie/claimd/index"
)

// display shape for a packed claim entry
type displayClaim struct {
	ClaimId         string `json:"claim_id"`
	Name            string `json:"name"`
	TxId            string `json:"txid"`
	NOut            uint64 `json:"nout"`
	Amount          uint64 `json:"amount"`
	EffectiveAmount uint64 `json:"effective_amount"`
	Height          uint64 `json:"height"`
	ValidAtHeight   uint64 `json:"valid_at_height"`
}

func displayEntry(e *index.Entry) *displayClaim {
	if nil == e {
		return nil
	}
	return &displayClaim{
		ClaimId:         hex.EncodeToString(e.ClaimId),
		Name:            e.Name,
		TxId:            hex.EncodeToString(e.TxId),
		NOut:            e.NOut,
		Amount:          e.Amount,
		EffectiveAmount: e.EffectiveAmount,
		Height:          e.Height,
		ValidAtHeight:   e.ValidAtHeight,
	}
}
