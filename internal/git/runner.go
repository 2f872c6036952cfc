// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var ErrQueryFailed = errors.New("git query failed")

// waitDelay bounds how long Run waits for git's pipes after git is killed or
// exits. Hooks and helpers that git spawns can hold them open.
const waitDelay = 100 * time.Millisecond

// Runner runs a single read-only git query and returns its stdout.
// A non-nil error means the answer is absent.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs queries with the git binary on PATH.
type ExecRunner struct {
	Dir     string        // empty means the process's working directory
	Timeout time.Duration // per query; zero means no limit beyond ctx
}

func (r ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	// --no-optional-locks keeps status from refreshing .git/index under the
	// user's own git commands.
	cmd := exec.CommandContext(ctx, "git", append([]string{"--no-optional-locks"}, args...)...)
	cmd.Dir = r.Dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr // never reaches our own stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: git %s: %v", ErrQueryFailed, strings.Join(args, " "), ctxErr)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: git %s: %s", ErrQueryFailed, strings.Join(args, " "), msg)
		}
		return "", fmt.Errorf("%w: git %s: %v", ErrQueryFailed, strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}
