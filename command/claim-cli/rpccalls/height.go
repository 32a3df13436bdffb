// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/claimtrie/claimd/rpc/block"
	"github.com/claimtrie/claimd/rpc/transaction"
)

// GetTransactionHeight - the block height a transaction was mined at
func (c *Client) GetTransactionHeight(txHash string) (*transaction.HeightReply, error) {

	args := transaction.HeightArguments{TxHash: txHash}

	if c.verbose {
		fmt.Fprintf(c.handle, "tx hash: %s\n", txHash)
	}

	var reply transaction.HeightReply
	if err := c.client.Call("Blockchain.Transaction.GetHeight", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetServerHeight - the highest block the server has processed
func (c *Client) GetServerHeight() (*block.ServerHeightReply, error) {

	var reply block.ServerHeightReply
	if err := c.client.Call("Blockchain.Block.GetServerHeight", &block.NoneArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
