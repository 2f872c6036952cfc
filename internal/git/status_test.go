// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package git_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/mikesep/gitline/internal/git"
	"github.com/mikesep/gitline/internal/git/gittest"
)

func Test_Status(t *testing.T) {
	testgroup.RunInParallel(t, &statusTests{})
}

type statusTests struct{}

type porcelainCase struct {
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
	Want  struct {
		Staged    int `yaml:"staged"`
		Modified  int `yaml:"modified"`
		Deleted   int `yaml:"deleted"`
		Renamed   int `yaml:"renamed"`
		Untracked int `yaml:"untracked"`
		Conflict  int `yaml:"conflict"`
	} `yaml:"want"`
}

func readPorcelainCases(t *testgroup.T) []porcelainCase {
	file, err := os.Open("testdata/porcelain.yaml")
	t.Require.NoError(err)
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.SetStrict(true)

	var cases []porcelainCase
	t.Require.NoError(dec.Decode(&cases))
	t.Require.NotEmpty(cases)
	return cases
}

func (*statusTests) Fixtures(t *testgroup.T) {
	for _, c := range readPorcelainCases(t) {
		c := c
		t.Run(strings.ReplaceAll(c.Name, " ", "_"), func(t *testgroup.T) {
			got := git.ClassifyPorcelain(strings.Join(c.Lines, "\n") + "\n")
			t.Equal(git.StatusCounts(c.Want), got)
		})
	}
}

func (*statusTests) Conflict_touches_nothing_else(t *testgroup.T) {
	got := git.ClassifyPorcelain("UU conflict.txt\n")
	t.Equal(git.StatusCounts{Conflict: 1}, got)
}

func (*statusTests) No_trailing_newline(t *testgroup.T) {
	got := git.ClassifyPorcelain("M  file1.txt")
	t.Equal(git.StatusCounts{Staged: 1}, got)
}

func (*statusTests) Short_lines_skipped(t *testgroup.T) {
	got := git.ClassifyPorcelain("M\n \n?? ok\n")
	t.Equal(git.StatusCounts{Untracked: 1}, got)
}

func (*statusTests) Unreadable_output_is_absent(t *testgroup.T) {
	// A line past bufio's token limit stops the scan with an error.
	raw := "M  a.go\n?? " + strings.Repeat("x", 70*1024) + "\n"
	t.Equal(git.StatusCounts{}, git.ClassifyPorcelain(raw))
	t.Equal(0, git.CountLines("stash@{0}: a\n"+strings.Repeat("y", 70*1024)))
}

func (*statusTests) Same_path_counted_per_side(t *testgroup.T) {
	got := git.ClassifyPorcelain("MM a.go\nMD b.go\n")
	t.Equal(git.StatusCounts{Staged: 2, Modified: 1, Deleted: 1}, got)
}

func (*statusTests) IsZero(t *testgroup.T) {
	t.True(git.StatusCounts{}.IsZero())
	t.False(git.StatusCounts{Untracked: 1}.IsZero())
}

func (*statusTests) ClassifyStatus_uses_porcelain(t *testgroup.T) {
	runner := gittest.NewRunner(map[string]string{
		gittest.Porcelain: "M  a\n?? b\n",
	})
	repo := git.NewLocalRepo(runner, zerolog.Nop())

	t.Equal(git.StatusCounts{Staged: 1, Untracked: 1}, repo.ClassifyStatus(context.Background()))
	t.Equal([]string{gittest.Porcelain}, runner.Calls())
}

func (*statusTests) ClassifyStatus_absent(t *testgroup.T) {
	repo := git.NewLocalRepo(gittest.NewRunner(nil), zerolog.Nop())
	t.Equal(git.StatusCounts{}, repo.ClassifyStatus(context.Background()))
}
