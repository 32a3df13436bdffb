// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/claim"
	"github.com/claimtrie/claimd/counter"
	"github.com/claimtrie/claimd/daemon"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/queryexec"
	"github.com/claimtrie/claimd/rpc/certificate"
	"github.com/claimtrie/claimd/rpc/listeners"
	"github.com/claimtrie/claimd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// QueryConfiguration - configuration file data for query workers
//
// Workers is a count of subprocess workers; zero runs the single
// in-process worker and a negative value sizes the pool from the
// cpu count
type QueryConfiguration struct {
	Workers       int    `gluamapper:"workers" json:"workers"`
	IndexDatabase string `gluamapper:"index_database" json:"index_database"`
	Chain         string `gluamapper:"chain" json:"chain"`
}

// connection count for rpc server
var connectionCountRPC counter.Counter

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	executor queryexec.Executor

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the query workers and the client rpc listener
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	queryConfiguration *QueryConfiguration,
	d daemon.Daemon,
	index claim.AddressGetter,
	height func() uint64,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	executor, err := queryexec.New(
		log,
		queryConfiguration.Workers,
		queryConfiguration.IndexDatabase,
		queryConfiguration.Chain,
	)
	if nil != err {
		return err
	}
	globalData.executor = executor

	tlsConfig, certificateFingerprint, err := certificate.Get(
		log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		executor.Stop()
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, executor, d, index, height),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		executor.Stop()
		return err
	}

	if err := rpcListener.Serve(); nil != err {
		executor.Stop()
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop the listener side and reap the query workers
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.executor.Stop()
	globalData.executor = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - the number of active client connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
