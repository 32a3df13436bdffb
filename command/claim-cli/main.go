// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 the claimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "claim-cli"
	app.Usage = "query a claimd server"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*claimd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "search",
			Usage:     "find claims matching the criteria",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "+claim name `NAME`",
				},
				cli.StringFlag{
					Name:  "claim-id, i",
					Value: "",
					Usage: "+claim id `CLAIM_ID`",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 0,
					Usage: " maximum claims returned `NUMBER`",
				},
				cli.IntFlag{
					Name:  "offset, o",
					Value: 0,
					Usage: " claims to skip `NUMBER`",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "resolve",
			Usage:     "find the claim each url refers to",
			ArgsUsage: "URL...",
			Action:    runResolve,
		},
		{
			Name:      "claims",
			Usage:     "fetch canonical claim records by id",
			ArgsUsage: "CLAIM_ID...",
			Action:    runClaims,
		},
		{
			Name:      "tx-height",
			Usage:     "the block height a transaction was mined at",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction hash `TXID`",
				},
			},
			Action: runTxHeight,
		},
		{
			Name:   "height",
			Usage:  "the highest block the server has processed",
			Action: runHeight,
		},
		{
			Name:  "version",
			Usage: "display claim-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress connection checks for certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "h" == command {
			return nil
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("connect is required")
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
