// Package gitstate implements domain.GitState using go-git, shelling out to
// the git CLI only for the push dry run, which go-git does not support.
package gitstate

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Adapter holds an opened repository handle. Open never fails: a failed open
// is surfaced through every subsequent query so the harness can record it as
// a probe error instead of aborting.
type Adapter struct {
	repo    *git.Repository
	openErr error
	dir     string
}

func Open(dir string) *Adapter {
	repo, err := git.PlainOpen(dir)
	return &Adapter{repo: repo, openErr: err, dir: dir}
}

func (a *Adapter) ready() error {
	if a.openErr != nil {
		return fmt.Errorf("opening repository at %s: %w", a.dir, a.openErr)
	}
	return nil
}

func (a *Adapter) CurrentBranch() (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	head, err := a.repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("detached HEAD at %s", head.Hash())
	}
	return head.Name().Short(), nil
}

func (a *Adapter) RemoteURL(name string) (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	remote, err := a.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("remote %q: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", name)
	}
	return urls[0], nil
}

// PushDryRun verifies credentials and connectivity without mutating the
// remote.
func (a *Adapter) PushDryRun(name string) error {
	if err := a.ready(); err != nil {
		return err
	}
	cmd := exec.Command("git", "push", "--dry-run", "--quiet", name)
	cmd.Dir = a.dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git push --dry-run %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Stage adds exactly the given paths to the index.
func (a *Adapter) Stage(paths []string) error {
	if err := a.ready(); err != nil {
		return err
	}
	wt, err := a.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	for _, p := range paths {
		if _, err := wt.Add(p); err != nil {
			return fmt.Errorf("staging %s: %w", p, err)
		}
	}
	return nil
}

func (a *Adapter) StagedPaths() ([]string, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	wt, err := a.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	var staged []string
	for path, fs := range status {
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			staged = append(staged, path)
		}
	}
	sort.Strings(staged)
	return staged, nil
}

// ResetIndex restores the index to HEAD, leaving the work tree untouched.
func (a *Adapter) ResetIndex() error {
	if err := a.ready(); err != nil {
		return err
	}
	wt, err := a.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if err := wt.Reset(&git.ResetOptions{Mode: git.MixedReset}); err != nil {
		return fmt.Errorf("resetting index: %w", err)
	}
	return nil
}

func (a *Adapter) IsIgnored(path string) (bool, error) {
	if err := a.ready(); err != nil {
		return false, err
	}
	wt, err := a.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("opening worktree: %w", err)
	}
	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return false, fmt.Errorf("reading ignore patterns: %w", err)
	}
	matcher := gitignore.NewMatcher(patterns)
	return matcher.Match(strings.Split(filepath.ToSlash(path), "/"), false), nil
}

// BlobHash returns the content hash of path resolved at rev.
func (a *Adapter) BlobHash(rev, path string) (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	hash, err := a.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rev, err)
	}
	commit, err := a.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("reading commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("reading tree of %s: %w", rev, err)
	}
	file, err := tree.File(filepath.ToSlash(path))
	if err != nil {
		return "", fmt.Errorf("%s at %s: %w", path, rev, err)
	}
	return file.Hash.String(), nil
}

func (a *Adapter) LocalHead() (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	head, err := a.repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// RemoteHead queries the remote for the tip of branch.
func (a *Adapter) RemoteHead(name, branch string) (string, error) {
	if err := a.ready(); err != nil {
		return "", err
	}
	remote, err := a.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("remote %q: %w", name, err)
	}
	refs, err := remote.List(&git.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("listing %s: %w", name, err)
	}
	want := plumbing.NewBranchReferenceName(branch)
	for _, ref := range refs {
		if ref.Name() == want {
			return ref.Hash().String(), nil
		}
	}
	return "", fmt.Errorf("remote %s has no branch %s", name, branch)
}
