// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run tasks in the background
//
// a set of background tasks that share a common shutdown signal
package background

// the shutdown and completed channels for one background task
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for the stop call
type T struct {
	s []shutdown
}

// Process - type signature for a background process
//
// the process must exit when the shutdown channel is closed
// and must close done just before returning
type Process func(args interface{}, shutdown <-chan struct{}, done chan<- struct{})

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdown, len(processes))

	for i, p := range processes {
		stop := make(chan struct{})
		done := make(chan struct{})
		register.s[i].shutdown = stop
		register.s[i].finished = done
		go p(args, stop, done)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.s {
		close(shutdown.shutdown)
	}

	// wait for all to finish
	for _, shutdown := range t.s {
		<-shutdown.finished
	}
}
