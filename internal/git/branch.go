// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"strings"
)

const UnknownBranch = "unknown"

type BranchInfo struct {
	Name       string
	IsDetached bool
}

// branchNameQueries are tried in order; the first non-empty answer names HEAD.
var branchNameQueries = [][]string{
	{"symbolic-ref", "--short", "HEAD"},
	{"describe", "--tags", "--exact-match", "HEAD"},
	{"rev-parse", "--short", "HEAD"},
}

// ResolveBranch names HEAD by branch, then exact tag, then short revision.
//
// IsDetached comes from a separate symbolic-ref check, so the two halves can
// disagree if the repository changes between the reads.
func (repo *LocalRepo) ResolveBranch(ctx context.Context) BranchInfo {
	name := repo.branchName(ctx)
	if name == "" {
		return BranchInfo{Name: UnknownBranch, IsDetached: true}
	}

	_, onBranch := repo.query(ctx, "symbolic-ref", "--quiet", "HEAD")

	return BranchInfo{Name: name, IsDetached: !onBranch}
}

func (repo *LocalRepo) branchName(ctx context.Context) string {
	for _, args := range branchNameQueries {
		out, ok := repo.query(ctx, args...)
		if !ok {
			continue
		}
		if name := firstLine(out); name != "" {
			return name
		}
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
