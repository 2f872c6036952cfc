// SPDX-FileCopyrightText: 2021 Michael Seplowitz
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/mikesep/gitline/internal/git/gittest"
	"github.com/mikesep/gitline/internal/statusline"
)

func Test_CLI(t *testing.T) {
	testgroup.RunInParallel(t, &cliTests{})
}

type cliTests struct{}

// Swaps os.Stderr, so it must not overlap with other tests.
func Test_CLI_stderr(t *testing.T) {
	testgroup.RunSerially(t, &stderrTests{})
}

type stderrTests struct{}

func (*stderrTests) Usage_errors(t *testgroup.T) {
	r, w, err := os.Pipe()
	t.Require.NoError(err)

	saved := os.Stderr
	os.Stderr = w
	code := run([]string{"--no-such-flag"}, &bytes.Buffer{})
	extra := run([]string{"status", "unexpected"}, &bytes.Buffer{})
	os.Stderr = saved
	t.Require.NoError(w.Close())

	written, err := io.ReadAll(r)
	t.Require.NoError(err)
	t.Equal(1, code)
	t.Equal(1, extra)
	t.Empty(string(written))
}

func (*cliTests) Help(t *testgroup.T) {
	var out bytes.Buffer
	t.Equal(0, run([]string{"--help"}, &out))
	t.Contains(out.String(), "Usage:")
	t.Contains(out.String(), "--format")
}

func (*cliTests) Unknown_flag(t *testgroup.T) {
	var out bytes.Buffer
	t.Equal(1, run([]string{"--no-such-flag"}, &out))
	t.Empty(out.String())
}

func (*cliTests) Bad_format(t *testgroup.T) {
	var out bytes.Buffer
	t.Equal(1, run([]string{"--format", "html"}, &out))
}

func (*cliTests) Not_a_repository(t *testgroup.T) {
	gittest.NewRepo(t.T) // skips without git

	var out bytes.Buffer
	t.Equal(0, run([]string{"-C", t.TempDir()}, &out))
	t.Equal("\n", out.String())
}

func (*cliTests) Missing_dir(t *testgroup.T) {
	var out bytes.Buffer
	t.Equal(0, run([]string{"-C", filepath.Join(t.TempDir(), "nope")}, &out))
	t.Equal("\n", out.String())
}

func (*cliTests) Clean_repository(t *testgroup.T) {
	dir := gittest.NewRepo(t.T)

	var out bytes.Buffer
	t.Equal(0, run([]string{"-C", dir}, &out))
	t.Equal("#[fg=blue]⎇ main#[fg=default] #[fg=green]✓#[fg=default]\n", out.String())
}

func (*cliTests) Status_command_plain(t *testgroup.T) {
	dir := gittest.NewRepo(t.T)
	gittest.WriteFile(t.T, dir, "new.txt", "x\n")

	var out bytes.Buffer
	t.Equal(0, run([]string{"-C", dir, "--format", "plain", "status"}, &out))
	t.Equal("⎇ main …1\n", out.String())
}

func (*cliTests) Log_file(t *testgroup.T) {
	dir := gittest.NewRepo(t.T)
	logFile := filepath.Join(t.TempDir(), "gitline.log")

	var out bytes.Buffer
	t.Equal(0, run([]string{"-C", dir, "--log-file", logFile}, &out))

	data, err := os.ReadFile(logFile)
	t.Require.NoError(err)
	t.Contains(string(data), `"message":"summarized"`)
	t.Contains(string(data), `"message":"query ok"`)
}

func (*cliTests) Legend(t *testgroup.T) {
	var out bytes.Buffer
	t.Equal(0, run([]string{"--format", "plain", "legend"}, &out))

	t.Contains(out.String(), statusline.Symbol(statusline.Clean)+"  nothing to report\n")
	t.Contains(out.String(), statusline.Symbol(statusline.Stashed)+"  stash entries\n")
}

func (*cliTests) Auto_format_off_terminal(t *testgroup.T) {
	opts := rootOptions{Format: "auto", stdout: &bytes.Buffer{}}
	t.Equal(statusline.Tmux, opts.colorScheme())
}
