package gittest

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// NewRepo creates a repository on branch main with one commit and returns its
// work tree. The test is skipped when git is not installed.
func NewRepo(t testing.TB) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}

	dir := t.TempDir()
	Git(t, dir, "init", "--quiet")
	Git(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	WriteFile(t, dir, "README.md", "hello\n")
	Git(t, dir, "add", "README.md")
	Git(t, dir, "commit", "--quiet", "--message", "initial")

	return dir
}

// Git runs a mutating git command in dir with an isolated configuration.
func Git(t testing.TB, dir string, args ...string) string {
	t.Helper()

	home := dir + "-home" // outside the work tree so it never shows as untracked
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", home, err)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return string(out)
}

func WriteFile(t testing.TB, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
