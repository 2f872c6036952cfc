package statusline

import (
	"strconv"
	"strings"

	"github.com/mikesep/gitline/internal/git"
)

type Formatter struct {
	Colors ColorScheme
}

// Format renders a status line with tmux color tags.
func Format(branch git.BranchInfo, ab git.AheadBehind, counts git.StatusCounts, stashes int) string {
	return Formatter{Colors: Tmux}.Format(branch, ab, counts, stashes)
}

// Format joins one segment per non-zero piece of state, in a fixed order.
// The branch segment always comes first; the clean segment appears only when
// nothing else but the branch would.
func (f Formatter) Format(branch git.BranchInfo, ab git.AheadBehind, counts git.StatusCounts, stashes int) string {
	colors := f.Colors
	if colors == nil {
		colors = Tmux
	}

	segment := func(c Category, value string) string {
		return colors.Start(ColorOf(c)) + Symbol(c) + value + colors.Reset()
	}

	branchSymbol := Symbol(Branch)
	if branch.IsDetached {
		branchSymbol = Symbol(Detached)
	}
	segments := []string{
		colors.Start(ColorOf(Branch)) + branchSymbol + " " + branch.Name + colors.Reset(),
	}

	for _, s := range []struct {
		category Category
		n        int
	}{
		{Ahead, ab.Ahead},
		{Behind, ab.Behind},
		{Conflict, counts.Conflict},
		{Staged, counts.Staged},
		{Modified, counts.Modified},
		{Deleted, counts.Deleted},
		{Renamed, counts.Renamed},
		{Untracked, counts.Untracked},
		{Stashed, stashes},
	} {
		if s.n > 0 {
			segments = append(segments, segment(s.category, strconv.Itoa(s.n)))
		}
	}

	if counts.IsZero() && stashes == 0 && ab.Ahead == 0 && ab.Behind == 0 {
		segments = append(segments, segment(Clean, ""))
	}

	return strings.Join(segments, " ")
}
