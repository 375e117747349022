// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package main

import (
	"flag"
	"os"

	"jindo/pkg/jindo/printer"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

// exampleCommand renders the built-in demonstration module built by
// demoModule.
type exampleCommand struct {
	ui  cli.Ui
	log hclog.Logger
}

func (c *exampleCommand) Synopsis() string { return "Render the built-in demonstration module" }

func (c *exampleCommand) Help() string {
	return "Usage: jindofmt example [-width N]\n\n" +
		"Renders a hand-built demonstration module (every item kind except\n" +
		"mod, and a sample of statements and expressions) at the given\n" +
		"column width (default 78)."
}

func (c *exampleCommand) Run(args []string) int {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	width := fs.Int("width", printer.DefaultColumns, "target column width")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	file := demoModule()
	if err := printer.FprintWidth(os.Stdout, file, nil, *width, c.log); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	return 0
}
