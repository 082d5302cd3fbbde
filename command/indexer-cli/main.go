// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
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
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "indexer-cli"
	app.Usage = "command line access to an indexerd"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " indexerd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create-pair",
			Usage:     "create a directional pair index",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
			},
			Action: runCreatePair,
		},
		{
			Name:      "set-intent",
			Usage:     "stake and advertise an intent to trade",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*intent owner `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "stake, a",
					Value: 0,
					Usage: " stake `AMOUNT` in smallest token units",
				},
				cli.StringFlag{
					Name:  "locator, l",
					Value: "",
					Usage: "*locator `HEX` up to 32 bytes",
				},
			},
			Action: runSetIntent,
		},
		{
			Name:      "unset-intent",
			Usage:     "withdraw an intent and recover the bond",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*intent owner `ADDRESS`",
				},
			},
			Action: runUnsetIntent,
		},
		{
			Name:      "locators",
			Usage:     "fetch a stake ordered page of locators",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "start, x",
					Value: "",
					Usage: " anchor owner `ADDRESS` [head of index]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " page size `COUNT`",
				},
			},
			Action: runLocators,
		},
		{
			Name:      "stake",
			Usage:     "show the bonded stake of an owner on a pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*intent owner `ADDRESS`",
				},
			},
			Action: runStake,
		},
		{
			Name:   "pause",
			Usage:  "halt all mutations (admin listener only)",
			Action: runPause,
		},
		{
			Name:   "resume",
			Usage:  "resume mutations (admin listener only)",
			Action: runResume,
		},
		{
			Name:      "blacklist",
			Usage:     "add or remove a token blacklist entry (admin listener only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: "*token `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "remove, r",
					Usage: " remove instead of add",
				},
			},
			Action: runBlacklist,
		},
		{
			Name:      "force-unset",
			Usage:     "evict an intent, refunding its owner (admin listener only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*signer token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "sender, S",
					Value: "",
					Usage: "*sender token `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*intent owner `ADDRESS`",
				},
			},
			Action: runForceUnset,
		},
		{
			Name:      "terminate",
			Usage:     "sweep all stake and retire the registry (admin listener only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: "*sweep destination `ADDRESS`",
				},
			},
			Action: runTerminate,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
