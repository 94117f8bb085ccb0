package checks

// runTooling verifies the host CLI the pipeline shells out to is resolvable
// and authenticated. Both are hard requirements.
func runTooling(d Deps, r *Recorder) {
	path, err := d.Host.ToolPath()
	if err != nil {
		r.RequireErr("host CLI resolvable on PATH", err)
	} else {
		r.Require("host CLI resolvable on PATH", true, path)
	}

	login, err := d.Host.AuthLogin()
	if err != nil {
		r.RequireErr("authenticated identity call succeeds", err)
	} else {
		r.Require("authenticated identity call succeeds", login != "", "logged in as "+login)
	}
}
