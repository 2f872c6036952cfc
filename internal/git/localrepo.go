// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LocalRepo answers read-only questions about the repository the runner points at.
// Every method maps a failed query to that question's default answer.
type LocalRepo struct {
	runner Runner
	log    zerolog.Logger
}

func NewLocalRepo(runner Runner, log zerolog.Logger) *LocalRepo {
	return &LocalRepo{runner: runner, log: log}
}

// IsRepository reports whether the working directory is inside a work tree.
func (repo *LocalRepo) IsRepository(ctx context.Context) bool {
	out, ok := repo.query(ctx, "rev-parse", "--is-inside-work-tree")
	return ok && strings.TrimSpace(out) == "true"
}

// query runs args and logs the outcome. ok is false when the answer is absent.
func (repo *LocalRepo) query(ctx context.Context, args ...string) (out string, ok bool) {
	start := time.Now()
	out, err := repo.runner.Run(ctx, args...)
	if err != nil {
		repo.log.Debug().
			Strs("args", args).
			Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("query absent")
		return "", false
	}

	repo.log.Debug().
		Strs("args", args).
		Dur("elapsed", time.Since(start)).
		Msg("query ok")
	return out, true
}
