// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/queryexec"
	"github.com/claimtrie/claimd/rpc/block"
	"github.com/claimtrie/claimd/rpc/claimtrie"
	"github.com/claimtrie/claimd/rpc/transaction"
)

// Create - make a server with the session method set
//
// net/rpc splits the service method on the last dot, so dotted
// service names give the electrum style wire names, for example
// Blockchain.Claimtrie.Search
func Create(
	log *logger.L,
	executor queryexec.Executor,
	d daemon.Daemon,
	index claim.AddressGetter,
	height func() uint64,
) *rpc.Server {

	server := rpc.NewServer()

	_ = server.RegisterName("Blockchain.Claimtrie", claimtrie.New(log, executor, d, index, height))
	_ = server.RegisterName("Blockchain.Transaction", transaction.New(log, d, height))
	_ = server.RegisterName("Blockchain.Block", block.New(log, height))

	return server
}
