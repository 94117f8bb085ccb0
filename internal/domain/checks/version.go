package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pipecheck/pipecheck/internal/domain/bump"
)

// runVersionBump asserts that the pipeline's patch increment is numeric,
// deterministic, and always yields a new distinct version.
func runVersionBump(d Deps, r *Recorder) {
	data, err := os.ReadFile(filepath.Join(d.WorkDir, d.Cfg.VersionFile))
	if err != nil {
		r.RequireErr("current version is readable", err)
		r.Blocked("version bump yields a distinct version")
		r.Blocked("version bump is deterministic")
		return
	}

	current := strings.TrimSpace(string(data))
	r.Require("current version is readable", true, current)

	next, err := bump.Next(current)
	if err != nil {
		r.RequireErr("version bump yields a distinct version", err)
		r.Blocked("version bump is deterministic")
		return
	}
	r.Require("version bump yields a distinct version",
		next != current && strings.Count(next, ".") == strings.Count(current, "."),
		fmt.Sprintf("%s -> %s", current, next))

	again, err := bump.Next(current)
	if err != nil {
		r.RequireErr("version bump is deterministic", err)
		return
	}
	r.Require("version bump is deterministic", again == next,
		fmt.Sprintf("got %s then %s", next, again))
}
