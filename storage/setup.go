// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/claimtrie/claimd/fault"
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// state pool keys
var (
	HeightKey = []byte("height")
	ChainKey  = []byte("chain")
)

// Connection - one set of pool handles onto a claim-index database
//
// every query worker owns its own Connection for its whole lifetime;
// the server process holds one more, shared read-only by all sessions
type Connection struct {
	db *leveldb.DB

	Claims         *PoolHandle
	ClaimAddresses *PoolHandle
	Names          *PoolHandle
	State          *PoolHandle
}

// Open - open a claim-index database
func Open(database string, readOnly bool) (*Connection, error) {

	db, err := leveldb.OpenFile(database, &ldb_opt.Options{
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	})
	if nil != err {
		return nil, err
	}

	conn := &Connection{
		db:             db,
		Claims:         &PoolHandle{prefix: 'C', database: db},
		ClaimAddresses: &PoolHandle{prefix: 'A', database: db},
		Names:          &PoolHandle{prefix: 'N', database: db},
		State:          &PoolHandle{prefix: 'S', database: db},
	}
	return conn, nil
}

// Close - release the underlying database
func (c *Connection) Close() error {
	if nil == c || nil == c.db {
		return nil
	}
	return c.db.Close()
}

// exported storage pools of the shared server connection
type pools struct {
	Claims         *PoolHandle
	ClaimAddresses *PoolHandle
	Names          *PoolHandle
	State          *PoolHandle
}

// Pool - the set of exported pools
var Pool pools

// holds the shared connection
var globalData struct {
	sync.Mutex
	conn        *Connection
	initialised bool
}

// Initialise - open the shared database connection
//
// this must be called before any Pool is accessed
func Initialise(database string, readOnly bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	conn, err := Open(database, readOnly)
	if nil != err {
		return err
	}

	globalData.conn = conn
	Pool.Claims = conn.Claims
	Pool.ClaimAddresses = conn.ClaimAddresses
	Pool.Names = conn.Names
	Pool.State = conn.State

	globalData.initialised = true
	return nil
}

// Finalise - close the shared connection
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	_ = globalData.conn.Close()
	globalData.conn = nil
	Pool = pools{}
	globalData.initialised = false
}
