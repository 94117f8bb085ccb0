package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipecheck/pipecheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".pipecheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pipecheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pipecheck.yaml from workDir. Returns DefaultConfig if the file
// does not exist.
func (l *YAMLLoader) Load(workDir string) (domain.Config, error) {
	return l.LoadFile(filepath.Join(workDir, fileName))
}

// LoadFile reads an explicit config file. Explicit values overlay the
// defaults; absent keys keep them.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}
