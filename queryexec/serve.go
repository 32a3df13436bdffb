// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queryexec

import (
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/claimtrie/claimd/index"
)

// Query - the rpc service a worker exposes on its pipes
type Query struct {
	reader *index.Reader
}

// Search - find claims matching the criteria
func (q *Query) Search(args *SearchArguments, reply *Payload) error {
	data, err := q.reader.Search(args.Criteria)
	if nil != err {
		return err
	}
	reply.Data = data
	return nil
}

// Resolve - find the claim each url refers to
func (q *Query) Resolve(args *ResolveArguments, reply *Payload) error {
	data, err := q.reader.Resolve(args.URLs)
	if nil != err {
		return err
	}
	reply.Data = data
	return nil
}

// in and out joined into the server transport
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }

// Serve - run as a query worker until the input closes
//
// this is the whole child process: open the private reader, answer
// queries over the pipes, exit on end of file
func Serve(database string, chainName string, in io.Reader, out io.Writer) error {

	reader, err := index.Open(database, chainName)
	if nil != err {
		return err
	}
	defer reader.Close()

	server := rpc.NewServer()
	if err := server.RegisterName(workerService, &Query{reader: reader}); nil != err {
		return err
	}

	server.ServeCodec(jsonrpc.NewServerCodec(stdio{Reader: in, Writer: out}))
	return nil
}
