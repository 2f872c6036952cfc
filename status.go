package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mikesep/gitline/internal/git"
	"github.com/mikesep/gitline/internal/logging"
	"github.com/mikesep/gitline/internal/statusline"
)

type statusOptions struct {
	rootOpts *rootOptions
}

// Execute prints the line even when it is empty. Failures inside the engine
// become defaults, so the only error is misuse.
func (opts *statusOptions) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("extra args: %v", args)
	}

	root := opts.rootOpts

	// A log file we cannot open just means no logs; stderr must stay quiet.
	logger, closer, err := logging.New(logging.Options{File: root.LogFile, Level: zerolog.DebugLevel})
	if err != nil {
		logger = zerolog.Nop()
	}
	defer closer.Close()
	logger = logging.WithDir(logger, root.Dir)

	start := time.Now()
	engine := statusline.Engine{
		Runner:    git.ExecRunner{Dir: root.Dir, Timeout: root.Timeout},
		Formatter: statusline.Formatter{Colors: root.colorScheme()},
		Log:       logger,
	}
	line := engine.Summarize(context.Background())
	logging.Since(logger, start, "summarized")

	fmt.Fprintln(root.stdout, line)
	return nil
}
