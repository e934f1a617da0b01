package sink

import (
	"fmt"

	"tabprep/internal/table"
)

// Adapter is the common behaviour every sink exposes.
type Adapter interface {
	Configure(cfg any) error    // driver-specific YAML ⇒ struct
	Write(t *table.Table) error // consume one table
	Close() error               // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown sink %q", name)
}
