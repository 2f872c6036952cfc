package git

import (
	"bufio"
	"context"
	"strings"
)

func (repo *LocalRepo) CountStashes(ctx context.Context) int {
	out, ok := repo.query(ctx, "stash", "list")
	if !ok {
		return 0
	}
	return CountLines(out)
}

// CountLines counts lines that are not blank.
func CountLines(raw string) int {
	n := 0
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0
	}
	return n
}
