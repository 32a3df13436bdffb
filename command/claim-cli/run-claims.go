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

func runClaims(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ids := c.Args()
	if 0 == len(ids) {
		return fmt.Errorf("claims needs at least one claim id")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	claims, err := client.GetClaimsByIds(ids)
	if nil != err {
		return err
	}

	return printJson(m.w, claims)
}
