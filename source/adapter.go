package source

import (
	"context"
	"fmt"

	"tabprep/internal/table"
)

// Adapter is the common behaviour every table source exposes. Load reads
// the whole input dataset into memory; preprocessing is batch-oriented.
type Adapter interface {
	Configure(cfg any) error
	Load(ctx context.Context) (*table.Table, error)
	Close() error
}

/*──────── registry ───────*/

// Factory builds an Adapter (e.g., csv driver, sarama driver).
type Factory func() Adapter

var registry = map[string]Factory{}

// Register is called from each driver's init.
func Register(name string, f Factory) {
	registry[name] = f
}

func NewAdapter(name string) (Adapter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("source: unsupported driver %q", name)
}
