package checks

import "fmt"

// runProvenance compares the local HEAD commit against what the remote
// reports for the primary branch. Divergence means unpushed work, reported
// as a warning; inability to query either side is a failure.
func runProvenance(d Deps, r *Recorder) {
	local, errLocal := d.Git.LocalHead()
	r.Require("local head readable", errLocal == nil, errDetail(errLocal))

	remote, errRemote := d.Git.RemoteHead(d.Cfg.RemoteName, d.Cfg.PrimaryBranch)
	r.Require(fmt.Sprintf("remote head of %s/%s readable", d.Cfg.RemoteName, d.Cfg.PrimaryBranch),
		errRemote == nil, errDetail(errRemote))

	if errLocal != nil || errRemote != nil {
		r.Blocked("local and remote heads match")
		return
	}

	r.Advise("local and remote heads match", local == remote,
		fmt.Sprintf("needs push: local %.12s, remote %.12s", local, remote))
}
