// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queryexec - claim query execution off the session threads
//
// the index database only allows one reader per connection to see a
// consistent view, so every worker owns exactly one private read-only
// connection for its whole lifetime
//
// two executors implement the same interface: a pool of subprocess
// workers spoken to over net/rpc json on their standard pipes, and a
// single in-process goroutine worker for debugging and small hosts
package queryexec
