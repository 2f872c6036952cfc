package main

import (
	"fmt"

	"github.com/mikesep/gitline/internal/statusline"
)

type legendOptions struct {
	rootOpts *rootOptions
}

var legendEntries = []struct {
	category statusline.Category
	meaning  string
}{
	{statusline.Branch, "current branch"},
	{statusline.Detached, "detached HEAD (tag or short revision)"},
	{statusline.Ahead, "commits ahead of upstream"},
	{statusline.Behind, "commits behind upstream"},
	{statusline.Conflict, "unmerged paths"},
	{statusline.Staged, "added or modified in the index"},
	{statusline.Modified, "modified in the work tree"},
	{statusline.Deleted, "deleted in the index or work tree"},
	{statusline.Renamed, "renamed or copied in the index"},
	{statusline.Untracked, "untracked paths"},
	{statusline.Stashed, "stash entries"},
	{statusline.Clean, "nothing to report"},
}

func (opts *legendOptions) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("extra args: %v", args)
	}

	colors := opts.rootOpts.colorScheme()
	for _, e := range legendEntries {
		fmt.Fprintf(opts.rootOpts.stdout, "%s%s%s  %s\n",
			colors.Start(statusline.ColorOf(e.category)),
			statusline.Symbol(e.category),
			colors.Reset(),
			e.meaning)
	}
	return nil
}
