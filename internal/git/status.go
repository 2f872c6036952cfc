// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package git

import (
	"bufio"
	"context"
	"strings"
)

type StatusCounts struct {
	Staged    int
	Modified  int
	Deleted   int
	Renamed   int
	Untracked int
	Conflict  int
}

func (c StatusCounts) IsZero() bool {
	return c == StatusCounts{}
}

// isConflict reports whether pair is one of the unmerged codes in git-status(1).
func isConflict(pair string) bool {
	switch pair {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	}
	return false
}

func (repo *LocalRepo) ClassifyStatus(ctx context.Context) StatusCounts {
	out, ok := repo.query(ctx, "status", "--porcelain")
	if !ok {
		return StatusCounts{}
	}
	return ClassifyPorcelain(out)
}

// ClassifyPorcelain counts `git status --porcelain` lines by their XY code.
// X (index) and Y (work tree) are counted independently, so "MM" adds to both
// Staged and Modified.
func ClassifyPorcelain(raw string) StatusCounts {
	var counts StatusCounts

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 {
			continue
		}
		counts.add(line[:2])
	}
	if err := scanner.Err(); err != nil {
		return StatusCounts{}
	}

	return counts
}

func (c *StatusCounts) add(pair string) {
	if isConflict(pair) {
		c.Conflict++
		return
	}

	x, y := pair[0], pair[1]

	switch x {
	case 'A', 'M':
		c.Staged++
	case 'D':
		c.Deleted++
	case 'R', 'C':
		c.Renamed++
	}

	switch {
	case y == 'M':
		c.Modified++
	case y == 'D':
		c.Deleted++
	case pair == "??":
		c.Untracked++
	}
}
