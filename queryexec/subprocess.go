// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queryexec

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"os/exec"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/fault"
)

// Pool - a fixed set of subprocess query workers
//
// at most one query runs on each worker at any time; callers block
// until a worker is free, so the pool size caps query concurrency
type Pool struct {
	sync.Mutex

	log     *logger.L
	free    chan *worker
	workers []*worker

	stopped bool
}

// one child process and its rpc client
type worker struct {
	cmd    *exec.Cmd
	client *rpc.Client
}

// the two child pipes joined into the client transport
type pipe struct {
	io.ReadCloser
	io.WriteCloser
}

// closing the write side is what tells the child to exit
func (p pipe) Close() error {
	err := p.WriteCloser.Close()
	if e := p.ReadCloser.Close(); nil == err {
		err = e
	}
	return err
}

func newPool(log *logger.L, count int, database string, chainName string) (*Pool, error) {

	self, err := os.Executable()
	if nil != err {
		return nil, err
	}

	p := &Pool{
		log:     log,
		free:    make(chan *worker, count),
		workers: make([]*worker, 0, count),
	}

	for i := 0; i < count; i += 1 {
		w, err := spawn(self, database, chainName)
		if nil != err {
			p.Stop()
			return nil, err
		}
		p.workers = append(p.workers, w)
		p.free <- w
	}

	log.Infof("started %d query workers", count)
	return p, nil
}

// start one child in worker mode and connect to its pipes
func spawn(self string, database string, chainName string) (*worker, error) {

	cmd := exec.Command(self, WorkerCommand, database, chainName)
	cmd.Stderr = os.Stderr

	in, err := cmd.StdinPipe()
	if nil != err {
		return nil, err
	}
	out, err := cmd.StdoutPipe()
	if nil != err {
		return nil, err
	}

	if err := cmd.Start(); nil != err {
		return nil, err
	}

	return &worker{
		cmd:    cmd,
		client: jsonrpc.NewClient(pipe{ReadCloser: out, WriteCloser: in}),
	}, nil
}

// wait for a free worker
func (p *Pool) checkout() (*worker, error) {
	p.Lock()
	if p.stopped {
		p.Unlock()
		return nil, fault.ExecutorStopped
	}
	p.Unlock()

	return <-p.free, nil
}

// the channel is sized for every worker, this never blocks
func (p *Pool) checkin(w *worker) {
	p.free <- w
}

// a failed call leaves the worker in the pool: the child holds no
// per-call state, so the next query can still use it
func (p *Pool) call(method string, args interface{}, reply *Payload) ([]byte, error) {
	w, err := p.checkout()
	if nil != err {
		return nil, err
	}
	defer p.checkin(w)

	if err := w.client.Call(method, args, reply); nil != err {
		if rpc.ErrShutdown == err {
			return nil, fault.ExecutorStopped
		}
		return nil, fault.ProcessError("query worker: " + err.Error())
	}
	return reply.Data, nil
}

// Search - find claims matching the criteria
func (p *Pool) Search(criteria map[string]interface{}) ([]byte, error) {
	var reply Payload
	return p.call(workerService+".Search", &SearchArguments{Criteria: criteria}, &reply)
}

// Resolve - find the claim each url refers to
func (p *Pool) Resolve(urls []string) ([]byte, error) {
	var reply Payload
	return p.call(workerService+".Resolve", &ResolveArguments{URLs: urls}, &reply)
}

// Stop - close all worker pipes and reap the children
func (p *Pool) Stop() {
	p.Lock()
	if p.stopped {
		p.Unlock()
		return
	}
	p.stopped = true
	p.Unlock()

	for _, w := range p.workers {
		if err := w.client.Close(); nil != err {
			p.log.Warnf("worker close error: %s", err)
		}
		if nil != w.cmd {
			_ = w.cmd.Wait()
		}
	}
	p.log.Info("query workers stopped")
}
