// Package csvfile loads a header-rowed CSV file into a table. Empty cells
// become the missing marker and numeric-looking cells become numbers, so a
// previously converted file reverse-converts cleanly; everything else
// comes in as text.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tabprep/internal/table"
	"tabprep/source"
)

type driver struct {
	cfg Config
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("csv-source: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return fmt.Errorf("csv-source: path is required")
	}
	d.cfg = c
	return nil
}

func (d *driver) Load(_ context.Context) (*table.Table, error) {
	f, err := os.Open(d.cfg.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if d.cfg.Delimiter != "" {
		r.Comma = rune(d.cfg.Delimiter[0])
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv-source: read %s: %w", d.cfg.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv-source: %s has no header row", d.cfg.Path)
	}

	header := records[0]
	cols := make([][]table.Value, len(header))
	for _, row := range records[1:] {
		for i := range header {
			if i >= len(row) || row[i] == "" {
				cols[i] = append(cols[i], table.Missing())
				continue
			}
			if f, err := strconv.ParseFloat(row[i], 64); err == nil {
				cols[i] = append(cols[i], table.Number(f))
			} else {
				cols[i] = append(cols[i], table.Text(row[i]))
			}
		}
	}

	t := table.New()
	for i, name := range header {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (d *driver) Close() error { return nil }

func init() {
	source.Register("csv", func() source.Adapter { return &driver{} })
}
