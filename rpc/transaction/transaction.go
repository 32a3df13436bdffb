// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/rpc/ratelimit"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100

	hashHexLength = 64
)

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Daemon  daemon.Daemon
	Height  func() uint64
}

// HeightArguments - arguments for the get height RPC request
type HeightArguments struct {
	TxHash string `json:"tx_hash"`
}

// HeightReply - results from the get height RPC
//
// Height is the block holding the transaction, -1 for a transaction
// still in the mempool and null for one the daemon does not know
type HeightReply struct {
	Height *int64 `json:"height"`
}

func New(log *logger.L, d daemon.Daemon, height func() uint64) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Daemon:  d,
		Height:  height,
	}
}

// GetHeight - the block height a transaction was mined at
//
// the hash is validated before the daemon is ever contacted
func (t *Transaction) GetHeight(arguments *HeightArguments, reply *HeightReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if hashHexLength != len(arguments.TxHash) {
		return fault.InvalidTransactionHash
	}
	if _, err := hex.DecodeString(arguments.TxHash); nil != err {
		return fault.InvalidTransactionHash
	}

	info, err := t.Daemon.GetRawTransaction(arguments.TxHash)
	if nil != err {
		return err
	}
	if nil == info || "" == info.Hex {
		return nil // height stays null
	}

	height := int64(-1)
	if nil != info.Confirmations {
		height = int64(t.Height()) - *info.Confirmations + 1
	}
	reply.Height = &height
	return nil
}
