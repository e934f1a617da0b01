// Package metadata implements the per-column classification store consumed
// by the formatter stages. Classifications are ordered name sets keyed by
// type; a column may appear under more than one type (raw scans classify
// datetime-looking text columns as discrete until a formatter reclassifies
// them). The store round-trips to YAML.
package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	TypeDatetime = "datetime"
	TypeDiscrete = "discrete"
)

type Store struct {
	typed   map[string][]string
	formats map[string]string
}

func NewStore() *Store {
	return &Store{
		typed:   make(map[string][]string),
		formats: make(map[string]string),
	}
}

// AddColumn classifies a column under a type. Re-adding under the same
// type is a no-op.
func (s *Store) AddColumn(name, typ string) {
	for _, n := range s.typed[typ] {
		if n == name {
			return
		}
	}
	s.typed[typ] = append(s.typed[typ], name)
}

func (s *Store) SetFormat(name, format string) {
	s.formats[name] = format
}

// FormatMapping returns a copy of the column→format map.
func (s *Store) FormatMapping() map[string]string {
	out := make(map[string]string, len(s.formats))
	for k, v := range s.formats {
		out[k] = v
	}
	return out
}

func (s *Store) ColumnsOf(typ string) []string {
	return append([]string(nil), s.typed[typ]...)
}

func (s *Store) DatetimeColumns() []string { return s.ColumnsOf(TypeDatetime) }
func (s *Store) DiscreteColumns() []string { return s.ColumnsOf(TypeDiscrete) }

// Reclassify moves columns from one type to another. Every column must
// currently be classified under from, otherwise the store is left
// unchanged and an error is returned.
func (s *Store) Reclassify(cols []string, from, to string) error {
	current := make(map[string]bool, len(s.typed[from]))
	for _, n := range s.typed[from] {
		current[n] = true
	}
	for _, c := range cols {
		if !current[c] {
			return fmt.Errorf("metadata: column %q is not classified as %q", c, from)
		}
	}
	move := make(map[string]bool, len(cols))
	for _, c := range cols {
		move[c] = true
	}
	kept := s.typed[from][:0:0]
	for _, n := range s.typed[from] {
		if !move[n] {
			kept = append(kept, n)
		}
	}
	s.typed[from] = kept
	for _, c := range cols {
		s.AddColumn(c, to)
	}
	return nil
}

// RemoveColumns drops columns from every classification and from the
// format mapping. Unknown names are ignored.
func (s *Store) RemoveColumns(cols []string) {
	drop := make(map[string]bool, len(cols))
	for _, c := range cols {
		drop[c] = true
	}
	for typ, names := range s.typed {
		kept := names[:0:0]
		for _, n := range names {
			if !drop[n] {
				kept = append(kept, n)
			}
		}
		s.typed[typ] = kept
	}
	for _, c := range cols {
		delete(s.formats, c)
	}
}

/*──────── persistence ───────*/

type fileForm struct {
	Columns map[string][]string `yaml:"columns"`
	Formats map[string]string   `yaml:"datetime_formats"`
}

func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fileForm
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("metadata: parse %s: %w", path, err)
	}
	s := NewStore()
	for typ, names := range f.Columns {
		for _, n := range names {
			s.AddColumn(n, typ)
		}
	}
	for n, fmtStr := range f.Formats {
		s.SetFormat(n, fmtStr)
	}
	return s, nil
}

func (s *Store) Save(path string) error {
	f := fileForm{Columns: s.typed, Formats: s.formats}
	raw, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
