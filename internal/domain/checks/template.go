package checks

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
)

const (
	injectedTimestampLine = "Last updated: <preflight dry run>"
	injectedVersionLine   = "## Version <preflight dry run>"
)

// runTemplateSubstitution rewrites the timestamp-marker and version-header
// lines of a disposable copy of the template document and verifies the
// rewrite, without ever touching the original.
func runTemplateSubstitution(d Deps, r *Recorder) {
	src := filepath.Join(d.WorkDir, d.Cfg.TemplateFile)
	original, err := os.ReadFile(src)
	if err != nil {
		r.RequireErr("template document is readable", err)
		r.Blocked("timestamp marker line present")
		r.Blocked("version header line present")
		r.Blocked("substitution rewrites the copy")
		r.Blocked("original document untouched")
		return
	}
	r.Require("template document is readable", true, d.Cfg.TemplateFile)

	tsRe, err := regexp.Compile(d.Cfg.TimestampPattern)
	if err != nil {
		r.RequireErr("timestamp marker line present", err)
		r.Blocked("version header line present")
		r.Blocked("substitution rewrites the copy")
		return
	}
	verRe, err := regexp.Compile(d.Cfg.VersionPattern)
	if err != nil {
		r.RequireErr("version header line present", err)
		r.Blocked("substitution rewrites the copy")
		return
	}

	r.Require("timestamp marker line present", tsRe.Match(original),
		"no line matches "+d.Cfg.TimestampPattern)
	r.Require("version header line present", verRe.Match(original),
		"no line matches "+d.Cfg.VersionPattern)

	tmp, err := os.MkdirTemp("", "pipecheck-template-")
	if err != nil {
		r.RequireErr("substitution rewrites the copy", err)
		return
	}
	defer os.RemoveAll(tmp)

	copyPath := filepath.Join(tmp, filepath.Base(d.Cfg.TemplateFile))
	rewritten := tsRe.ReplaceAll(original, []byte(injectedTimestampLine))
	rewritten = verRe.ReplaceAll(rewritten, []byte(injectedVersionLine))
	if err := os.WriteFile(copyPath, rewritten, 0o644); err != nil {
		r.RequireErr("substitution rewrites the copy", err)
		return
	}

	written, err := os.ReadFile(copyPath)
	if err != nil {
		r.RequireErr("substitution rewrites the copy", err)
		return
	}
	r.Require("substitution rewrites the copy",
		bytes.Contains(written, []byte(injectedTimestampLine)) &&
			bytes.Contains(written, []byte(injectedVersionLine)),
		"injected marker lines missing from rewritten copy")

	after, err := os.ReadFile(src)
	if err != nil {
		r.RequireErr("original document untouched", err)
		return
	}
	r.Require("original document untouched", bytes.Equal(original, after),
		d.Cfg.TemplateFile+" was modified during the dry run")
}
