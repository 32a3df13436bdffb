// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/claimtrie/claimd/command/claim-cli/rpccalls"
)

func runTxHeight(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId := c.String("txid")
	if "" == txId {
		return fmt.Errorf("txid is required")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetTransactionHeight(txId)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
