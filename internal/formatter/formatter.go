// Package formatter defines the contract every column formatter exposes to
// the pipeline runner, plus the name→factory registry the compiler uses to
// build a formatter chain from config.
package formatter

import (
	"fmt"

	"tabprep/internal/table"
)

// Metadata is the slice of the metadata store a formatter consumes during
// fit. Implemented by metadata.Store.
type Metadata interface {
	FormatMapping() map[string]string
	DatetimeColumns() []string
	DiscreteColumns() []string
	Reclassify(cols []string, from, to string) error
	RemoveColumns(cols []string)
}

// Formatter is one interchangeable preprocessing unit. Fit runs once
// before any Convert/ReverseConvert call; both conversions return a new
// table and never fail — per-cell problems degrade into the data itself.
type Formatter interface {
	Fit(meta Metadata)
	Convert(in *table.Table) *table.Table
	ReverseConvert(in *table.Table) *table.Table
}

/*──────── registry ───────*/

type Factory func() Formatter

var registry = map[string]Factory{}

// Register is called from each formatter package's init.
func Register(name string, f Factory) {
	registry[name] = f
}

func New(name string) (Formatter, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("formatter: unknown formatter %q", name)
}
