// Package jobstore reads job records from the external scheduler's JSON
// config document.
package jobstore

import (
	"fmt"
	"os"

	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/tidwall/gjson"
)

// Store implements domain.JobStore over a JSON document of the form
// {"jobs": [{"id": ..., "command": ..., "timeout": ...}, ...]}.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Lookup(id string) (domain.JobRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.JobRecord{}, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if !gjson.ValidBytes(data) {
		return domain.JobRecord{}, fmt.Errorf("parsing %s: not valid JSON", s.path)
	}

	record := gjson.GetBytes(data, fmt.Sprintf(`jobs.#(id==%q)`, id))
	if !record.Exists() {
		return domain.JobRecord{}, fmt.Errorf("%w: %q in %s", domain.ErrJobNotFound, id, s.path)
	}

	return domain.JobRecord{
		ID:             id,
		Command:        record.Get("command").String(),
		TimeoutSeconds: record.Get("timeout").Int(),
	}, nil
}
