// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queryexec

import (
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/claimtrie/claimd/fault"
)

// WorkerCommand - hidden command line mode selecting Serve
//
// the server re-runs its own binary in this mode for each pool worker
const WorkerCommand = "query-worker"

// UnsetWorkers - sentinel for an unconfigured worker count
const UnsetWorkers = -1

// at least this many workers when sizing from the cpu count
const minimumWorkers = 4

// the net/rpc service name workers register
const workerService = "Query"

// SearchArguments - criteria for a claim search
type SearchArguments struct {
	Criteria map[string]interface{} `json:"criteria"`
}

// ResolveArguments - urls to resolve
type ResolveArguments struct {
	URLs []string `json:"urls"`
}

// Payload - an opaque TLV result payload
type Payload struct {
	Data []byte `json:"data"`
}

// Executor - run index queries on a private connection
//
// Stop waits for queries in flight and is safe to call twice; any
// call after Stop fails with an executor stopped error
type Executor interface {
	Search(criteria map[string]interface{}) ([]byte, error)
	Resolve(urls []string) ([]byte, error)
	Stop()
}

// New - build the executor selected by the worker count
//
// negative is unset and sizes a subprocess pool from the cpu count,
// zero runs a single worker inside this process, a positive count
// runs that many subprocess workers
func New(log *logger.L, workers int, database string, chainName string) (Executor, error) {
	switch {
	case workers < UnsetWorkers:
		return nil, fault.InvalidWorkerCount

	case UnsetWorkers == workers:
		n := runtime.NumCPU()
		if n < minimumWorkers {
			n = minimumWorkers
		}
		return newPool(log, n, database, chainName)

	case 0 == workers:
		return newInProcess(log, database, chainName)

	default:
		return newPool(log, workers, database, chainName)
	}
}
