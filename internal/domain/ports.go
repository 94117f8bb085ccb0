package domain

import "errors"

// ErrJobNotFound is returned by JobStore.Lookup when no record matches the id.
var ErrJobNotFound = errors.New("job not found")

// GitState is the read-only query surface over the local working copy and its
// remote. The only permitted mutations are staging an explicit path list and
// resetting the index back, used by the leak-prevention check.
type GitState interface {
	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch() (string, error)

	// RemoteURL returns the first fetch URL of the named remote.
	RemoteURL(name string) (string, error)

	// PushDryRun verifies credentials and connectivity for the named remote
	// without mutating it.
	PushDryRun(name string) error

	// Stage adds exactly the given paths to the index. Never a wildcard.
	Stage(paths []string) error

	// StagedPaths lists paths currently staged in the index.
	StagedPaths() ([]string, error)

	// ResetIndex unstages everything, restoring the index to HEAD.
	ResetIndex() error

	// IsIgnored reports whether the ignore-list mechanism excludes path.
	IsIgnored(path string) (bool, error)

	// BlobHash returns the content hash of path at the given revision.
	BlobHash(rev, path string) (string, error)

	// LocalHead returns the commit hash of local HEAD.
	LocalHead() (string, error)

	// RemoteHead returns the commit hash the named remote reports for branch.
	RemoteHead(name, branch string) (string, error)
}

// HostClient is the narrow query surface over the remote hosting API and its
// CLI tooling.
type HostClient interface {
	// ToolPath resolves the host CLI on the execution path.
	ToolPath() (string, error)

	// AuthLogin returns the currently authenticated login name.
	AuthLogin() (string, error)

	// RepoExists reports whether owner/name exists on the host.
	RepoExists(slug string) (bool, error)

	// TopLevelFiles lists the names of top-level files of owner/name.
	TopLevelFiles(slug string) ([]string, error)
}

// JobRecord is one scheduled job from the external scheduler config store.
type JobRecord struct {
	ID             string
	Command        string
	TimeoutSeconds int64
}

// JobStore looks up scheduled job records by identifier.
type JobStore interface {
	Lookup(id string) (JobRecord, error)
}

// ConfigLoader loads the harness configuration for a working directory.
type ConfigLoader interface {
	Load(workDir string) (Config, error)
}
