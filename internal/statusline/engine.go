// Package statusline turns the state of the current git work tree into a
// single colored line for a tmux status bar.
package statusline

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mikesep/gitline/internal/git"
)

type Summary struct {
	Branch      git.BranchInfo
	AheadBehind git.AheadBehind
	Counts      git.StatusCounts
	Stashes     int
}

type Engine struct {
	Runner    git.Runner
	Formatter Formatter
	Log       zerolog.Logger
}

// Gather reads the repository state. ok is false when the working directory is
// not inside a work tree, in which case nothing beyond that check is queried.
func (e *Engine) Gather(ctx context.Context) (summary Summary, ok bool) {
	repo := git.NewLocalRepo(e.Runner, e.Log)

	if !repo.IsRepository(ctx) {
		e.Log.Debug().Msg("not a work tree")
		return Summary{}, false
	}

	// Each read writes only its own field and falls back to its own default,
	// so none of them return an error.
	var g errgroup.Group
	g.Go(func() error {
		summary.Branch = repo.ResolveBranch(ctx)
		return nil
	})
	g.Go(func() error {
		summary.AheadBehind = repo.CountAheadBehind(ctx)
		return nil
	})
	g.Go(func() error {
		summary.Counts = repo.ClassifyStatus(ctx)
		return nil
	})
	g.Go(func() error {
		summary.Stashes = repo.CountStashes(ctx)
		return nil
	})
	_ = g.Wait()

	e.Log.Debug().
		Str("branch", summary.Branch.Name).
		Bool("detached", summary.Branch.IsDetached).
		Int("ahead", summary.AheadBehind.Ahead).
		Int("behind", summary.AheadBehind.Behind).
		Interface("counts", summary.Counts).
		Int("stashes", summary.Stashes).
		Msg("gathered")

	return summary, true
}

// Summarize returns the status line, or "" outside a work tree.
func (e *Engine) Summarize(ctx context.Context) string {
	summary, ok := e.Gather(ctx)
	if !ok {
		return ""
	}
	return e.Formatter.Format(summary.Branch, summary.AheadBehind, summary.Counts, summary.Stashes)
}
