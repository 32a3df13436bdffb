// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tip - the currently processed block height of the index
//
// the block processor advances the index in a separate program, so
// the height is cached here and refreshed whenever the database
// directory changes on disk
package tip

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/background"
	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/storage"
)

// globals
var globalData struct {
	sync.RWMutex

	log     *logger.L
	state   storage.Handle
	watcher *fsnotify.Watcher
	height  uint64

	background *background.T

	// set once during initialise
	initialised bool
}

// Initialise - load the height and start watching for index updates
//
// databaseDirectory may be empty to disable the filesystem watch
func Initialise(state storage.Handle, databaseDirectory string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == state {
		return fault.DatabaseIsNotSet
	}

	globalData.log = logger.New("tip")
	globalData.log.Info("starting…")

	globalData.state = state
	globalData.height, _ = state.GetN(storage.HeightKey)

	if "" != databaseDirectory {
		watcher, err := fsnotify.NewWatcher()
		if nil != err {
			return err
		}
		if err := watcher.Add(databaseDirectory); nil != err {
			_ = watcher.Close()
			return err
		}
		globalData.watcher = watcher

		processes := background.Processes{watch}
		globalData.background = background.Start(processes, watcher)
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop the watcher
func Finalise() {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return
	}

	watcher := globalData.watcher
	bg := globalData.background
	log := globalData.log
	globalData.watcher = nil
	globalData.background = nil
	globalData.initialised = false

	// stop outside the lock: the watch loop calls Refresh which
	// needs the lock for itself
	globalData.Unlock()

	if nil != watcher {
		_ = watcher.Close()
	}
	bg.Stop()

	log.Info("finished")
	log.Flush()
}

// Height - the currently processed block height
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// Refresh - re-read the height from the index
func Refresh() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.state {
		return
	}
	if height, ok := globalData.state.GetN(storage.HeightKey); ok {
		globalData.height = height
	}
}

// refresh on any write in the database directory
func watch(args interface{}, shutdown <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	watcher := args.(*fsnotify.Watcher)
	log := globalData.log

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case _, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			Refresh()

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Warnf("watch error: %s", err)
		}
	}
}
