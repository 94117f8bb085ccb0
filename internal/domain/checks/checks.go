// Package checks implements the preflight checks run against the update
// pipeline's external state. Every probe is read-only; the only mutations
// are self-cleaning fixtures owned by a single check.
package checks

import "github.com/pipecheck/pipecheck/internal/domain"

// Deps bundles the outbound ports a check may probe.
type Deps struct {
	Git     domain.GitState
	Host    domain.HostClient
	Jobs    domain.JobStore
	Cfg     domain.Config
	WorkDir string
}

// Spec is one registered check: an id, a human title, and the function that
// performs its probes and records assertions in evaluation order.
type Spec struct {
	ID    string
	Title string
	Run   func(Deps, *Recorder)
}

// All returns every check in its declared execution order. The order is
// significant: checks that stage and reset the shared working copy must not
// interleave with checks inspecting it.
func All() []Spec {
	return []Spec{
		{ID: "repo-health", Title: "Repository health", Run: runRepoHealth},
		{ID: "leak-prevention", Title: "Leak prevention", Run: runLeakPrevention},
		{ID: "version-bump", Title: "Version bump logic", Run: runVersionBump},
		{ID: "template-substitution", Title: "Template substitution dry run", Run: runTemplateSubstitution},
		{ID: "change-detection", Title: "Shared document change detection", Run: runChangeDetection},
		{ID: "provenance", Title: "Local/remote provenance", Run: runProvenance},
		{ID: "tooling", Title: "Host tooling and auth", Run: runTooling},
		{ID: "job-config", Title: "Scheduler job config", Run: runJobConfig},
		{ID: "manifest", Title: "Manifest and docs integrity", Run: runManifest},
		{ID: "mirror", Title: "Remote mirror state", Run: runMirror},
	}
}

func errDetail(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
