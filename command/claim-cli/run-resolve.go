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

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	urls := c.Args()
	if 0 == len(urls) {
		return fmt.Errorf("resolve needs at least one url")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	resolutions, err := client.Resolve(urls)
	if nil != err {
		return err
	}

	type displayResolution struct {
		URL   string        `json:"url"`
		Claim *displayClaim `json:"claim"`
	}

	display := make([]displayResolution, len(resolutions))
	for i, r := range resolutions {
		display[i] = displayResolution{
			URL:   r.URL,
			Claim: displayEntry(r.Claim),
		}
	}

	return printJson(m.w, display)
}
