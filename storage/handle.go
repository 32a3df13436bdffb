// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Handle - read access to one pool
type Handle interface {
	Get(key []byte) []byte
	GetN(key []byte) (uint64, bool)
	Has(key []byte) bool
}

// PoolHandle - direct access to one prefixed section of the database
type PoolHandle struct {
	prefix   byte
	database *leveldb.DB
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	if nil == p.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second return is false if the record was not found
// panics if the record is shorter than 8 bytes
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	if nil == p.database {
		return false
	}
	ok, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return ok
}

// Put - store a key/value bytes pair to the database
//
// only used by the index builder and by tests; fails on a
// read-only connection
func (p *PoolHandle) Put(key []byte, value []byte) error {
	if nil == p.database {
		return nil
	}
	return p.database.Put(p.prefixKey(key), value, nil)
}

// PutN - store a big endian uint64 under a key
func (p *PoolHandle) PutN(key []byte, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return p.Put(key, buffer)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	if nil == p.database {
		return nil
	}
	return p.database.Delete(p.prefixKey(key), nil)
}
