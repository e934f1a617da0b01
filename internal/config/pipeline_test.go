package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPipelineSpec_ResolvesRelativePathsAndSchema(t *testing.T) {
	dir := t.TempDir()
	pipe := []byte(`schema_version: v1
metadata: metadata.yml
source:
  kind: csv
  driver: csv
  config: csv_source.yml
formatters: [datetime]
sinks: [stdout]
`)
	if err := os.WriteFile(filepath.Join(dir, "pipeline.yml"), pipe, 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}

	cfg, err := LoadPipelineSpec(filepath.Join(dir, "pipeline.yml"))
	if err != nil {
		t.Fatalf("LoadPipelineSpec: %v", err)
	}
	if cfg.SchemaVersion != SupportedSchema {
		t.Fatalf("want schema %s, got %s", SupportedSchema, cfg.SchemaVersion)
	}
	if !filepath.IsAbs(cfg.Source.Config) {
		t.Fatalf("want absolute source config path, got %q", cfg.Source.Config)
	}
	if !filepath.IsAbs(cfg.Metadata) {
		t.Fatalf("want absolute metadata path, got %q", cfg.Metadata)
	}
	if len(cfg.Formatters) != 1 || cfg.Formatters[0] != "datetime" {
		t.Fatalf("formatters = %v", cfg.Formatters)
	}
}

func TestLoadPipelineSpec_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	pipe := []byte(`schema_version: v999
metadata: metadata.yml
source: { kind: csv, driver: csv, config: cf.yml }
formatters: [datetime]
sinks: [stdout]
`)
	if err := os.WriteFile(filepath.Join(dir, "pipeline.yml"), pipe, 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}
	if _, err := LoadPipelineSpec(filepath.Join(dir, "pipeline.yml")); err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
