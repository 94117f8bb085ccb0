package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
)

const sentinelContent = "PIPECHECK_SENTINEL_SECRET=do-not-commit\n"

// runLeakPrevention stages the pipeline's explicit path list and asserts that
// a secret-bearing sentinel file and a random unexpected file never end up in
// the staged set, before and after consulting the ignore list. The check owns
// the full fixture lifecycle: files are created, inspected, and deleted on
// every exit path, and the index is always reset.
func runLeakPrevention(d Deps, r *Recorder) {
	sentinel := d.Cfg.SentinelFile

	// Create the sentinel only if it does not already exist in the work
	// tree; a pre-existing file belongs to the operator and is left alone.
	sentinelPath := filepath.Join(d.WorkDir, sentinel)
	if _, err := os.Stat(sentinelPath); os.IsNotExist(err) {
		if err := os.WriteFile(sentinelPath, []byte(sentinelContent), 0o600); err != nil {
			r.RequireErr("sentinel fixture created", err)
			r.Blocked("sentinel excluded from staged set")
			r.Blocked("unexpected file excluded from staged set")
			return
		}
		defer os.Remove(sentinelPath)
	}

	random := "pipecheck-" + uuid.NewString() + ".tmp"
	randomPath := filepath.Join(d.WorkDir, random)
	if err := os.WriteFile(randomPath, []byte("unexpected\n"), 0o600); err != nil {
		r.RequireErr("random fixture created", err)
		r.Blocked("sentinel excluded from staged set")
		r.Blocked("unexpected file excluded from staged set")
		return
	}
	defer os.Remove(randomPath)

	// Leave no residual staged changes no matter how the check exits.
	defer func() { _ = d.Git.ResetIndex() }()

	if err := d.Git.Stage(d.Cfg.StagePaths); err != nil {
		r.RequireErr(fmt.Sprintf("explicit staging of %d path(s) succeeds", len(d.Cfg.StagePaths)), err)
		r.Blocked("sentinel excluded from staged set")
		r.Blocked("unexpected file excluded from staged set")
		return
	}
	r.Require(fmt.Sprintf("explicit staging of %d path(s) succeeds", len(d.Cfg.StagePaths)), true, "")

	assertExcluded := func(phase string) {
		staged, err := d.Git.StagedPaths()
		if err != nil {
			r.RequireErr("staged set is inspectable "+phase, err)
			r.Blocked("sentinel excluded from staged set " + phase)
			r.Blocked("unexpected file excluded from staged set " + phase)
			return
		}
		r.Require("sentinel excluded from staged set "+phase,
			!slices.Contains(staged, sentinel),
			fmt.Sprintf("%s must never be staged", sentinel))
		r.Require("unexpected file excluded from staged set "+phase,
			!slices.Contains(staged, random),
			fmt.Sprintf("%s must never be staged", random))
	}

	assertExcluded("before ignore check")

	ignored, err := d.Git.IsIgnored(sentinel)
	if err != nil {
		r.AdviseErr("sentinel covered by ignore list", err)
	} else {
		r.Advise("sentinel covered by ignore list", ignored,
			fmt.Sprintf("%s is not matched by the ignore list", sentinel))
	}

	// Exclusion must hold even when the ignore list misses: re-stage the
	// same explicit set and inspect again.
	if err := d.Git.Stage(d.Cfg.StagePaths); err != nil {
		r.RequireErr("explicit re-staging succeeds", err)
		return
	}
	assertExcluded("after ignore check")
}
