// Package csvfile writes a table back out as a header-rowed CSV file.
// Missing cells are written as empty strings.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"tabprep/internal/table"
	"tabprep/sink"
)

type Config struct {
	Path string `yaml:"path"`
}

type driver struct {
	cfg Config
}

func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("csv-sink: expected Config, got %T", raw)
	}
	if c.Path == "" {
		return fmt.Errorf("csv-sink: path is required")
	}
	d.cfg = c
	return nil
}

func (d *driver) Write(t *table.Table) error {
	f, err := os.Create(d.cfg.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	names := t.Columns()
	if err := w.Write(names); err != nil {
		return err
	}
	for i := 0; i < t.Rows(); i++ {
		row := make([]string, len(names))
		for j, name := range names {
			vals, _ := t.Column(name)
			row[j] = vals[i].Render()
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (d *driver) Close() error { return nil }

func init() {
	sink.Register("csv", func() sink.Adapter { return &driver{} })
}
