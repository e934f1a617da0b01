// tabprep/sink/stdout/driver.go
package stdout

import (
	"fmt"
	"strings"

	"tabprep/internal/table"
	"tabprep/sink"
)

/* ────────── public YAML config ────────── */
type Config struct {
	MaxRows       int `yaml:"max_rows"`        // 0 = unlimited
	ValueMaxBytes int `yaml:"value_max_bytes"` // 0 = unlimited
}

/* ────────── driver ────────── */
type driver struct {
	cfg Config
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	return nil
}

func (d *driver) Write(t *table.Table) error {
	names := t.Columns()
	fmt.Printf("[sink] %s\n", strings.Join(names, ","))

	rows := t.Rows()
	if d.cfg.MaxRows > 0 && rows > d.cfg.MaxRows {
		rows = d.cfg.MaxRows
	}
	for i := 0; i < rows; i++ {
		cells := make([]string, len(names))
		for j, name := range names {
			vals, _ := t.Column(name)
			cells[j] = d.trim(vals[i].Render())
		}
		fmt.Printf("[sink] %s\n", strings.Join(cells, ","))
	}
	if rows < t.Rows() {
		fmt.Printf("[sink] … %d more rows\n", t.Rows()-rows)
	}
	return nil
}

func (d *driver) Close() error { return nil }

func (d *driver) trim(s string) string {
	if d.cfg.ValueMaxBytes > 0 && len(s) > d.cfg.ValueMaxBytes {
		return s[:d.cfg.ValueMaxBytes] + "…"
	}
	return s
}

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
