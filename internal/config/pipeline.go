package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tabprep/internal/spec"
)

const SupportedSchema = "v1"

// LoadPipelineSpec parses a pipeline YAML, validates schema_version, and
// resolves the source config and metadata paths relative to the pipeline
// file.
func LoadPipelineSpec(path string) (spec.File, error) {
	var cfg spec.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("pipeline schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	base := filepath.Dir(path)
	if cfg.Source.Config != "" && !filepath.IsAbs(cfg.Source.Config) {
		cfg.Source.Config = filepath.Join(base, cfg.Source.Config)
	}
	if cfg.Metadata != "" && !filepath.IsAbs(cfg.Metadata) {
		cfg.Metadata = filepath.Join(base, cfg.Metadata)
	}
	return cfg, nil
}
