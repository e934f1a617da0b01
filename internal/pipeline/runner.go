package pipeline

import (
	"context"
	"errors"
	"fmt"

	"tabprep/internal/formatter"
	"tabprep/internal/logging"
	"tabprep/internal/table"
	"tabprep/sink"
	"tabprep/source"
)

const (
	ModeConvert = "convert"
	ModeReverse = "reverse"
)

type stage struct {
	name string
	f    formatter.Formatter
}

// Runner drives an ordered chain of formatters over one metadata store.
// Fit runs each formatter once; Convert applies the chain forward and
// ReverseConvert walks it backwards, mirroring how post-processing undoes
// preprocessing.
type Runner struct {
	meta   formatter.Metadata
	chain  []stage
	source source.Adapter
	sinks  []sink.Adapter
	fitted bool
}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) SetMetadata(m formatter.Metadata) { r.meta = m }
func (r *Runner) SetSource(s source.Adapter)       { r.source = s }
func (r *Runner) AddSink(s sink.Adapter)           { r.sinks = append(r.sinks, s) }

func (r *Runner) AddFormatter(name string, f formatter.Formatter) {
	r.chain = append(r.chain, stage{name: name, f: f})
}

func (r *Runner) Fit() error {
	if r.meta == nil {
		return errors.New("runner: no metadata configured")
	}
	for _, s := range r.chain {
		s.f.Fit(r.meta)
		logging.L().Info("formatter fitted", "formatter", s.name)
	}
	r.fitted = true
	return nil
}

func (r *Runner) Convert(t *table.Table) *table.Table {
	for _, s := range r.chain {
		t = s.f.Convert(t)
	}
	return t
}

func (r *Runner) ReverseConvert(t *table.Table) *table.Table {
	for i := len(r.chain) - 1; i >= 0; i-- {
		t = r.chain[i].f.ReverseConvert(t)
	}
	return t
}

// Execute runs one batch: load the table, fit the chain, transform in the
// requested direction, and hand the result to every sink.
func (r *Runner) Execute(ctx context.Context, mode string) error {
	if r.source == nil {
		return errors.New("runner: no source configured")
	}
	in, err := r.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("runner: load: %w", err)
	}
	if !r.fitted {
		if err := r.Fit(); err != nil {
			return err
		}
	}

	var out *table.Table
	switch mode {
	case ModeConvert:
		out = r.Convert(in)
	case ModeReverse:
		out = r.ReverseConvert(in)
	default:
		return fmt.Errorf("runner: unknown mode %q", mode)
	}

	for _, s := range r.sinks {
		if err := s.Write(out); err != nil {
			return fmt.Errorf("runner: sink: %w", err)
		}
	}
	return nil
}

func (r *Runner) Close() error {
	var first error
	if r.source != nil {
		if err := r.source.Close(); err != nil && first == nil {
			first = err
		}
	}
	for _, s := range r.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
