// Package gittest provides a git.Runner that answers from canned output.
package gittest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mikesep/gitline/internal/git"
)

// Runner answers queries keyed by their space-joined args. Unknown queries fail
// the same way a missing ref or upstream does.
type Runner struct {
	Outputs map[string]string

	mu    sync.Mutex
	calls []string
}

func NewRunner(outputs map[string]string) *Runner {
	return &Runner{Outputs: outputs}
}

func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")

	r.mu.Lock()
	r.calls = append(r.calls, key)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: git %s: %v", git.ErrQueryFailed, key, err)
	}

	out, ok := r.Outputs[key]
	if !ok {
		return "", fmt.Errorf("%w: git %s: exit status 128", git.ErrQueryFailed, key)
	}
	return out, nil
}

// Calls returns the queries run so far, in the order they started.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Query keys for the questions LocalRepo asks.
const (
	InsideWorkTree = "rev-parse --is-inside-work-tree"
	SymbolicShort  = "symbolic-ref --short HEAD"
	ExactTag       = "describe --tags --exact-match HEAD"
	ShortRevision  = "rev-parse --short HEAD"
	SymbolicQuiet  = "symbolic-ref --quiet HEAD"
	AheadBehind    = "rev-list --left-right --count HEAD...@{upstream}"
	Porcelain      = "status --porcelain"
	StashList      = "stash list"
)

// OnBranch returns outputs for a work tree on branch with no other state.
func OnBranch(branch string) map[string]string {
	return map[string]string{
		InsideWorkTree: "true\n",
		SymbolicShort:  branch + "\n",
		SymbolicQuiet:  "refs/heads/" + branch + "\n",
		Porcelain:      "",
		StashList:      "",
	}
}
