package domain

import "fmt"

// Config holds everything the preflight checks need to know about the
// pipeline under validation, loaded from .pipecheck.yaml.
type Config struct {
	// Repository expectations.
	RemoteName    string `yaml:"remote_name"    json:"remote_name,omitempty"`
	RemoteURL     string `yaml:"remote_url"     json:"remote_url,omitempty"`
	PrimaryBranch string `yaml:"primary_branch" json:"primary_branch,omitempty"`
	RepoSlug      string `yaml:"repo_slug"      json:"repo_slug,omitempty"`

	// Leak prevention: the explicit paths the pipeline stages, and the
	// sentinel secret-bearing file that must never be staged.
	StagePaths   []string `yaml:"stage_paths"   json:"stage_paths,omitempty"`
	SentinelFile string   `yaml:"sentinel_file" json:"sentinel_file,omitempty"`

	// Version bump.
	VersionFile string `yaml:"version_file" json:"version_file,omitempty"`

	// Template substitution dry run.
	TemplateFile     string `yaml:"template_file"     json:"template_file,omitempty"`
	TimestampPattern string `yaml:"timestamp_pattern" json:"timestamp_pattern,omitempty"`
	VersionPattern   string `yaml:"version_pattern"   json:"version_pattern,omitempty"`

	// Change detection: the shared document compared between local HEAD and
	// the remote primary branch.
	SharedDoc string `yaml:"shared_doc" json:"shared_doc,omitempty"`

	// Scheduler job config.
	JobsFile       string   `yaml:"jobs_file"       json:"jobs_file,omitempty"`
	JobID          string   `yaml:"job_id"          json:"job_id,omitempty"`
	RequiredGuards []string `yaml:"required_guards" json:"required_guards,omitempty"`
	MinJobTimeout  int64    `yaml:"min_job_timeout" json:"min_job_timeout,omitempty"`

	// Manifest and documentation integrity.
	ManifestFile           string   `yaml:"manifest_file"            json:"manifest_file,omitempty"`
	RequiredManifestFields []string `yaml:"required_manifest_fields" json:"required_manifest_fields,omitempty"`
	DocsFile               string   `yaml:"docs_file"                json:"docs_file,omitempty"`
	RequiredDocSections    []string `yaml:"required_doc_sections"    json:"required_doc_sections,omitempty"`
	IgnoreFile             string   `yaml:"ignore_file"              json:"ignore_file,omitempty"`
	RequiredIgnoreEntries  []string `yaml:"required_ignore_entries"  json:"required_ignore_entries,omitempty"`

	// Remote mirror expectations.
	ExpectedRemoteFiles []string `yaml:"expected_remote_files" json:"expected_remote_files,omitempty"`
}

// DefaultConfig returns the conventional expectations for an update pipeline
// repository. Explicit values from .pipecheck.yaml override these.
func DefaultConfig() Config {
	return Config{
		RemoteName:       "origin",
		PrimaryBranch:    "main",
		SentinelFile:     ".env",
		VersionFile:      "VERSION",
		TemplateFile:     "README.template.md",
		TimestampPattern: `(?m)^Last updated: .*$`,
		VersionPattern:   `(?m)^## Version .*$`,
		SharedDoc:        "README.md",
		JobsFile:         "jobs.json",
		MinJobTimeout:    300,
		ManifestFile:     "manifest.json",
		DocsFile:         "README.md",
		IgnoreFile:       ".gitignore",
	}
}

// Validate rejects configurations the checks cannot run against.
func (c Config) Validate() error {
	if c.RemoteName == "" {
		return fmt.Errorf("remote_name must not be empty")
	}
	if c.PrimaryBranch == "" {
		return fmt.Errorf("primary_branch must not be empty")
	}
	if c.MinJobTimeout < 0 {
		return fmt.Errorf("min_job_timeout must not be negative, got %d", c.MinJobTimeout)
	}
	for _, p := range c.StagePaths {
		if p == "." || p == "*" || p == "-A" {
			return fmt.Errorf("stage_paths must enumerate explicit paths, got %q", p)
		}
	}
	return nil
}
