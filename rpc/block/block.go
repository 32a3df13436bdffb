// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/rpc/ratelimit"
)

const (
	rateLimitBlock = 200
	rateBurstBlock = 100
)

// Block - an RPC entry for block related functions
type Block struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Height  func() uint64
}

// NoneArguments - empty arguments
type NoneArguments struct{}

// ServerHeightReply - results from get server height RPC
type ServerHeightReply struct {
	Height uint64 `json:"height"`
}

func New(log *logger.L, height func() uint64) *Block {
	return &Block{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBlock, rateBurstBlock),
		Height:  height,
	}
}

// GetServerHeight - the highest block the index has processed
func (b *Block) GetServerHeight(_ *NoneArguments, reply *ServerHeightReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	reply.Height = b.Height()
	return nil
}
