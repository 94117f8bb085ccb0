package checks

import (
	"fmt"
	"slices"
)

// runMirror queries the remote hosting API for repository existence and for
// the fixed set of expected top-level files. Each missing file is its own
// assertion.
func runMirror(d Deps, r *Recorder) {
	exists, err := d.Host.RepoExists(d.Cfg.RepoSlug)
	if err != nil {
		r.RequireErr(fmt.Sprintf("repository %s exists on host", d.Cfg.RepoSlug), err)
	} else {
		r.Require(fmt.Sprintf("repository %s exists on host", d.Cfg.RepoSlug),
			exists, "repository not found")
	}

	if err != nil || !exists {
		for _, f := range d.Cfg.ExpectedRemoteFiles {
			r.Blocked(fmt.Sprintf("remote file %q present", f))
		}
		return
	}

	files, err := d.Host.TopLevelFiles(d.Cfg.RepoSlug)
	if err != nil {
		r.RequireErr("remote file listing readable", err)
		for _, f := range d.Cfg.ExpectedRemoteFiles {
			r.Blocked(fmt.Sprintf("remote file %q present", f))
		}
		return
	}

	for _, f := range d.Cfg.ExpectedRemoteFiles {
		r.Require(fmt.Sprintf("remote file %q present", f),
			slices.Contains(files, f),
			fmt.Sprintf("%s has no top-level file %q", d.Cfg.RepoSlug, f))
	}
}
