// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Command jindofmt is a small driver over pkg/jindo/printer: it never
// parses jindo source (that front end is out of scope for this
// repository), so its subcommands exercise the printer and the comment
// gatherer directly rather than reading-then-formatting a file end to end.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const appName = "jindofmt"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name:  appName,
		Level: hclog.Info,
	})

	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	c := cli.NewCLI(appName, version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"example": func() (cli.Command, error) {
			return &exampleCommand{ui: ui, log: log}, nil
		},
		"comments": func() (cli.Command, error) {
			return &commentsCommand{ui: ui, log: log}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}

const version = "0.1.0"
