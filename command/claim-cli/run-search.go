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

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	criteria := map[string]interface{}{}
	if name := c.String("name"); "" != name {
		criteria["name"] = name
	}
	if claimId := c.String("claim-id"); "" != claimId {
		criteria["claim_id"] = claimId
	}
	if 0 == len(criteria) {
		return fmt.Errorf("search needs a name or a claim-id")
	}
	if limit := c.Int("limit"); limit > 0 {
		criteria["limit"] = limit
	}
	if offset := c.Int("offset"); offset > 0 {
		criteria["offset"] = offset
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	entries, err := client.Search(criteria)
	if nil != err {
		return err
	}

	display := make([]*displayClaim, len(entries))
	for i, e := range entries {
		display[i] = displayEntry(e)
	}

	return printJson(m.w, display)
}
