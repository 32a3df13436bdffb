// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package daemon - JSON-RPC client for the external chain daemon
//
// the daemon is the full node this server queries for raw chain and
// claim data it does not index locally; only the two calls the RPC
// handlers need are exposed
package daemon
