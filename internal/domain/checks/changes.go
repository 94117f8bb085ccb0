package checks

import "fmt"

// runChangeDetection compares the shared document's content hash between
// local HEAD and the remote primary branch. Differing hashes mean the
// pipeline has work to do, which is informational, not a defect.
func runChangeDetection(d Deps, r *Recorder) {
	localRef := "HEAD"
	remoteRef := d.Cfg.RemoteName + "/" + d.Cfg.PrimaryBranch

	local, errLocal := d.Git.BlobHash(localRef, d.Cfg.SharedDoc)
	r.Require(fmt.Sprintf("content hash of %s at %s readable", d.Cfg.SharedDoc, localRef),
		errLocal == nil, errDetail(errLocal))

	remote, errRemote := d.Git.BlobHash(remoteRef, d.Cfg.SharedDoc)
	r.Require(fmt.Sprintf("content hash of %s at %s readable", d.Cfg.SharedDoc, remoteRef),
		errRemote == nil, errDetail(errRemote))

	if errLocal != nil || errRemote != nil {
		r.Blocked("shared document in sync")
		return
	}

	r.Advise("shared document in sync", local == remote,
		fmt.Sprintf("update required: %s differs between %s and %s", d.Cfg.SharedDoc, localRef, remoteRef))
}
