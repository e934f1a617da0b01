package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tabprep/internal/table"
)

func TestLoad_ReadsHeaderAndMissingCells(t *testing.T) {
	dir := t.TempDir()
	csv := []byte("created,city\n2023-01-01,oslo\n,lima\n1672531200,quito\n")
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, csv, 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	d := &driver{}
	if err := d.Configure(Config{Path: path}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	tb, err := d.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := tb.Columns(); len(got) != 2 || got[0] != "created" || got[1] != "city" {
		t.Fatalf("columns = %v", got)
	}
	created, _ := tb.Column("created")
	if created[0].Kind() != table.KindText || created[0].Text() != "2023-01-01" {
		t.Fatalf("created[0] = %v", created[0])
	}
	if !created[1].IsMissing() {
		t.Fatal("empty cell should be missing")
	}
	if created[2].Kind() != table.KindNumber || created[2].Number() != 1672531200 {
		t.Fatalf("numeric cell = %v (%s)", created[2].Number(), created[2].Kind())
	}
}

func TestConfigure_RequiresPath(t *testing.T) {
	d := &driver{}
	if err := d.Configure(Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
	if err := d.Configure("nope"); err == nil {
		t.Fatal("expected error for wrong config type")
	}
}
