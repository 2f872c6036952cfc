package git

import (
	"context"
	"strconv"
	"strings"
)

type AheadBehind struct {
	Ahead  int
	Behind int
}

// CountAheadBehind compares HEAD with its upstream. No upstream means {0, 0}.
func (repo *LocalRepo) CountAheadBehind(ctx context.Context) AheadBehind {
	out, ok := repo.query(ctx, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if !ok {
		return AheadBehind{}
	}
	return ParseAheadBehind(out)
}

// ParseAheadBehind reads "<ahead>\t<behind>" from the first line of raw.
// Anything else yields the zero value; there is no partial result.
func ParseAheadBehind(raw string) AheadBehind {
	fields := strings.Split(firstLine(raw), "\t")
	if len(fields) != 2 {
		return AheadBehind{}
	}

	ahead, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || ahead < 0 {
		return AheadBehind{}
	}
	behind, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || behind < 0 {
		return AheadBehind{}
	}

	return AheadBehind{Ahead: ahead, Behind: behind}
}
