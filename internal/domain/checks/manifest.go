package checks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// runManifest asserts the presence of required manifest fields, documentation
// section headers, and ignore-list entries. Each missing item is its own
// assertion.
func runManifest(d Deps, r *Recorder) {
	checkManifestFields(d, r)
	checkDocSections(d, r)
	checkIgnoreEntries(d, r)
}

func checkManifestFields(d Deps, r *Recorder) {
	if len(d.Cfg.RequiredManifestFields) == 0 {
		return
	}

	data, err := os.ReadFile(filepath.Join(d.WorkDir, d.Cfg.ManifestFile))
	if err != nil {
		r.RequireErr(d.Cfg.ManifestFile+" readable", err)
		for _, field := range d.Cfg.RequiredManifestFields {
			r.Blocked(fmt.Sprintf("manifest field %q present", field))
		}
		return
	}
	if !gjson.ValidBytes(data) {
		r.Require(d.Cfg.ManifestFile+" readable", false, "not valid JSON")
		for _, field := range d.Cfg.RequiredManifestFields {
			r.Blocked(fmt.Sprintf("manifest field %q present", field))
		}
		return
	}
	r.Require(d.Cfg.ManifestFile+" readable", true, "")

	for _, field := range d.Cfg.RequiredManifestFields {
		r.Require(fmt.Sprintf("manifest field %q present", field),
			gjson.GetBytes(data, field).Exists(),
			fmt.Sprintf("%s has no field %q", d.Cfg.ManifestFile, field))
	}
}

func checkDocSections(d Deps, r *Recorder) {
	if len(d.Cfg.RequiredDocSections) == 0 {
		return
	}

	data, err := os.ReadFile(filepath.Join(d.WorkDir, d.Cfg.DocsFile))
	if err != nil {
		r.RequireErr(d.Cfg.DocsFile+" readable", err)
		for _, section := range d.Cfg.RequiredDocSections {
			r.Blocked(fmt.Sprintf("doc section %q present", section))
		}
		return
	}
	text := string(data)
	for _, section := range d.Cfg.RequiredDocSections {
		r.Require(fmt.Sprintf("doc section %q present", section),
			strings.Contains(text, section),
			fmt.Sprintf("%s lacks section header %q", d.Cfg.DocsFile, section))
	}
}

func checkIgnoreEntries(d Deps, r *Recorder) {
	if len(d.Cfg.RequiredIgnoreEntries) == 0 {
		return
	}

	data, err := os.ReadFile(filepath.Join(d.WorkDir, d.Cfg.IgnoreFile))
	if err != nil {
		r.RequireErr(d.Cfg.IgnoreFile+" readable", err)
		for _, entry := range d.Cfg.RequiredIgnoreEntries {
			r.Blocked(fmt.Sprintf("ignore entry %q present", entry))
		}
		return
	}

	entries := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		entries[strings.TrimSpace(line)] = true
	}
	for _, entry := range d.Cfg.RequiredIgnoreEntries {
		r.Require(fmt.Sprintf("ignore entry %q present", entry),
			entries[entry],
			fmt.Sprintf("%s lacks entry %q", d.Cfg.IgnoreFile, entry))
	}
}
