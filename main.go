// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/mikesep/gitline/internal/statusline"
)

/*
tmux.conf:

	set -g status-interval 5
	set -g status-right '#(cd #{pane_current_path}; gitline)'
*/

type rootOptions struct {
	Status statusOptions `command:"status" description:"print the status line (default)"`
	Legend legendOptions `command:"legend" description:"list the symbols and what they mean"`

	Dir     string        `short:"C" long:"dir" value-name:"DIR" description:"run as if started in DIR"`
	Format  string        `long:"format" choice:"tmux" choice:"ansi" choice:"plain" choice:"auto" default:"tmux" description:"color markup"`
	Timeout time.Duration `long:"timeout" value-name:"DURATION" default:"2s" description:"limit for each git query"`
	LogFile string        `long:"log-file" value-name:"PATH" description:"write debug logs to PATH"`

	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	opts := rootOptions{stdout: stdout}
	opts.Status.rootOpts = &opts
	opts.Legend.rootOpts = &opts

	// No flags.PrintErrors: tmux shows anything on stderr in the status bar.
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, flagErr.Message)
				return 0
			}
		}
		return 1
	}

	if parser.Active == nil {
		if err := opts.Status.Execute(rest); err != nil {
			return 1
		}
	}

	return 0
}

func (opts *rootOptions) colorScheme() statusline.ColorScheme {
	switch opts.Format {
	case "ansi":
		return statusline.ANSI
	case "plain":
		return statusline.Plain
	case "auto":
		if f, ok := opts.stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return statusline.ANSI
		}
	}
	return statusline.Tmux
}
