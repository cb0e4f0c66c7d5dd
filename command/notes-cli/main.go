// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/identity"
)

type metadata struct {
	connect string
	keyFile string
	key     *identity.PrivateKey
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "notes-cli"
	app.Usage = "signed note ledger client"
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
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " notesd RPC `HOST:PORT`",
			EnvVar: "NOTES_CONNECT",
		},
		cli.StringFlag{
			Name:   "key-file, k",
			Value:  "",
			Usage:  " file holding the base58 private key `FILE`",
			EnvVar: "NOTES_KEY_FILE",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair, written to the key file if one is given",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "address",
			Usage:     "derive a profile or note address locally",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` [key file identity]",
				},
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: " note `ID`, profile address if omitted",
				},
				cli.StringFlag{
					Name:  "program, p",
					Value: "",
					Usage: " program `ADDRESS` [default program]",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "create-user",
			Usage:     "create the profile for the key file identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "*profile `NAME`",
				},
			},
			Action: runCreateUser,
		},
		{
			Name:      "create-note",
			Usage:     "add a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*note `TITLE`",
				},
				cli.StringFlag{
					Name:  "content, m",
					Value: "",
					Usage: " note `CONTENT`",
				},
			},
			Action: runCreateNote,
		},
		{
			Name:      "update-note",
			Usage:     "replace the content of a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*note `ID`",
				},
				cli.StringFlag{
					Name:  "content, m",
					Value: "",
					Usage: " new `CONTENT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` of the note sequence [key file identity]",
				},
			},
			Action: runUpdateNote,
		},
		{
			Name:      "delete-note",
			Usage:     "remove a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*note `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` of the note sequence [key file identity]",
				},
			},
			Action: runDeleteNote,
		},
		{
			Name:      "get-profile",
			Usage:     "show a profile",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` [key file identity]",
				},
			},
			Action: runGetProfile,
		},
		{
			Name:      "get-note",
			Usage:     "show a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "id, i",
					Value: 0,
					Usage: "*note `ID`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` [key file identity]",
				},
			},
			Action: runGetNote,
		},
		{
			Name:      "list-notes",
			Usage:     "list live notes in id order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` [key file identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 1,
					Usage: " first note `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum notes to return `COUNT`",
				},
			},
			Action: runListNotes,
		},
		{
			Name:   "info",
			Usage:  "display notesd info",
			Action: runInfo,
		},
		{
			Name: "version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// load the key
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		keyFile := c.GlobalString("key-file")

		m := &metadata{
			connect: c.GlobalString("connect"),
			keyFile: keyFile,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// these create or do not need a key
		switch c.Args().Get(0) {
		case "", "version", "generate", "help", "h":
			return nil
		}

		if "" == keyFile {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading key file: %s\n", keyFile)
		}
		key, err := readKeyFile(keyFile)
		if nil != err {
			return err
		}
		m.key = key

		return nil
	}

	return app
}
