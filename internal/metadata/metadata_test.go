package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReclassify_MovesColumns(t *testing.T) {
	s := NewStore()
	s.AddColumn("created", TypeDiscrete)
	s.AddColumn("city", TypeDiscrete)

	if err := s.Reclassify([]string{"created"}, TypeDiscrete, TypeDatetime); err != nil {
		t.Fatalf("reclassify: %v", err)
	}
	if got := s.DiscreteColumns(); len(got) != 1 || got[0] != "city" {
		t.Fatalf("discrete = %v", got)
	}
	if got := s.DatetimeColumns(); len(got) != 1 || got[0] != "created" {
		t.Fatalf("datetime = %v", got)
	}
}

func TestReclassify_RejectsUnknownColumn(t *testing.T) {
	s := NewStore()
	s.AddColumn("city", TypeDiscrete)

	err := s.Reclassify([]string{"city", "ghost"}, TypeDiscrete, TypeDatetime)
	if err == nil {
		t.Fatal("expected error for column not in from set")
	}
	// A failed reclassify leaves the store unchanged.
	if got := s.DiscreteColumns(); len(got) != 1 || got[0] != "city" {
		t.Fatalf("discrete = %v", got)
	}
}

func TestRemoveColumns_DropsFormatsToo(t *testing.T) {
	s := NewStore()
	s.AddColumn("created", TypeDatetime)
	s.AddColumn("created", TypeDiscrete)
	s.SetFormat("created", "%Y-%m-%d")

	s.RemoveColumns([]string{"created", "ghost"})
	if got := s.DatetimeColumns(); len(got) != 0 {
		t.Fatalf("datetime = %v", got)
	}
	if got := s.DiscreteColumns(); len(got) != 0 {
		t.Fatalf("discrete = %v", got)
	}
	if got := s.FormatMapping(); len(got) != 0 {
		t.Fatalf("formats = %v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewStore()
	s.AddColumn("created", TypeDatetime)
	s.AddColumn("created", TypeDiscrete)
	s.AddColumn("city", TypeDiscrete)
	s.SetFormat("created", "%Y-%m-%d")

	path := filepath.Join(t.TempDir(), "metadata.yml")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := loaded.DatetimeColumns(); len(got) != 1 || got[0] != "created" {
		t.Fatalf("datetime = %v", got)
	}
	if got := loaded.DiscreteColumns(); len(got) != 2 {
		t.Fatalf("discrete = %v", got)
	}
	if got := loaded.FormatMapping()["created"]; got != "%Y-%m-%d" {
		t.Fatalf("format = %q", got)
	}
}

func TestLoad_ParsesHandWrittenDocument(t *testing.T) {
	doc := []byte(`columns:
  datetime: [created]
  discrete: [created, city]
datetime_formats:
  created: "%Y-%m-%d %H:%M:%S"
`)
	path := filepath.Join(t.TempDir(), "metadata.yml")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.FormatMapping()["created"]; got != "%Y-%m-%d %H:%M:%S" {
		t.Fatalf("format = %q", got)
	}
}
