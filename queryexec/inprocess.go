// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queryexec

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/fault"
	"github.com/claimtrie/claimd/index"
)

type result struct {
	payload []byte
	err     error
}

type job struct {
	run  func(r *index.Reader) ([]byte, error)
	done chan result
}

// InProcess - a single goroutine worker inside the server process
type InProcess struct {
	sync.RWMutex

	log  *logger.L
	jobs chan job
	done chan struct{}

	stopped bool
}

func newInProcess(log *logger.L, database string, chainName string) (*InProcess, error) {

	reader, err := index.Open(database, chainName)
	if nil != err {
		return nil, err
	}

	e := &InProcess{
		log:  log,
		jobs: make(chan job),
		done: make(chan struct{}),
	}

	log.Info("starting in-process query worker")
	go e.worker(reader)

	return e, nil
}

// the worker owns the reader and serialises all queries onto it
func (e *InProcess) worker(reader *index.Reader) {
	for j := range e.jobs {
		payload, err := j.run(reader)
		j.done <- result{payload: payload, err: err}
	}
	if err := reader.Close(); nil != err {
		e.log.Warnf("reader close error: %s", err)
	}
	close(e.done)
}

// the read lock keeps Stop from closing the jobs channel while a
// submit is still allowed to send on it
func (e *InProcess) submit(run func(r *index.Reader) ([]byte, error)) ([]byte, error) {
	e.RLock()
	if e.stopped {
		e.RUnlock()
		return nil, fault.ExecutorStopped
	}

	j := job{run: run, done: make(chan result, 1)}
	e.jobs <- j
	e.RUnlock()

	res := <-j.done
	return res.payload, res.err
}

// Search - find claims matching the criteria
func (e *InProcess) Search(criteria map[string]interface{}) ([]byte, error) {
	return e.submit(func(r *index.Reader) ([]byte, error) {
		return r.Search(criteria)
	})
}

// Resolve - find the claim each url refers to
func (e *InProcess) Resolve(urls []string) ([]byte, error) {
	return e.submit(func(r *index.Reader) ([]byte, error) {
		return r.Resolve(urls)
	})
}

// Stop - finish queries in flight and release the reader
func (e *InProcess) Stop() {
	e.Lock()
	if e.stopped {
		e.Unlock()
		return
	}
	e.stopped = true
	close(e.jobs)
	e.Unlock()

	<-e.done
	e.log.Info("in-process query worker stopped")
}
