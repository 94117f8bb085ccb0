package checks

import "fmt"

// runRepoHealth verifies the local working copy points where the pipeline
// expects: repository handle, remote URL, primary branch, and a non-mutating
// push dry run as a credentials/connectivity probe.
func runRepoHealth(d Deps, r *Recorder) {
	_, err := d.Git.LocalHead()
	r.Require("work tree is a versioned repository", err == nil, errDetail(err))

	url, err := d.Git.RemoteURL(d.Cfg.RemoteName)
	if err != nil {
		r.RequireErr(fmt.Sprintf("remote %q is configured", d.Cfg.RemoteName), err)
	} else if d.Cfg.RemoteURL == "" {
		r.Require(fmt.Sprintf("remote %q is configured", d.Cfg.RemoteName), true, url)
	} else {
		r.Require(fmt.Sprintf("remote %q points at expected location", d.Cfg.RemoteName),
			url == d.Cfg.RemoteURL,
			fmt.Sprintf("expected %s, got %s", d.Cfg.RemoteURL, url))
	}

	branch, err := d.Git.CurrentBranch()
	if err != nil {
		r.RequireErr("checked out on primary branch", err)
	} else {
		r.Require("checked out on primary branch",
			branch == d.Cfg.PrimaryBranch,
			fmt.Sprintf("expected %s, got %s", d.Cfg.PrimaryBranch, branch))
	}

	err = d.Git.PushDryRun(d.Cfg.RemoteName)
	r.Require("push dry run succeeds", err == nil, errDetail(err))
}
