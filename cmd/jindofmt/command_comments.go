// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package main

import (
	"fmt"
	"os"

	"jindo/pkg/jindo/scanner"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

// commentsCommand runs scanner.GatherComments over a real file and prints
// the recovered comment stream, exercising the comment gatherer
// independently of the emitter.
type commentsCommand struct {
	ui  cli.Ui
	log hclog.Logger
}

func (c *commentsCommand) Synopsis() string { return "List comments recovered from a source file" }

func (c *commentsCommand) Help() string {
	return "Usage: jindofmt comments <file>\n\n" +
		"Gathers // and /* */ comments from <file> and prints each one's\n" +
		"byte offset, kind and text."
}

func (c *commentsCommand) Run(args []string) int {
	if len(args) != 1 {
		c.ui.Error("expected exactly one file argument")
		return 1
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	for _, cm := range scanner.GatherComments(src) {
		kind := "line"
		if cm.Kind == scanner.BlockComment {
			kind = "block"
		}
		c.ui.Output(fmt.Sprintf("%d: %s: %s", cm.Position, kind, cm.Text))
	}
	return 0
}
