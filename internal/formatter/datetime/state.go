package datetime

// State is the serializable fit result, letting a fitted transformer be
// persisted between the fit run and later convert/reverse runs.
type State struct {
	UsableColumns []string          `yaml:"usable_columns"`
	Formats       map[string]string `yaml:"formats"`
	DeadColumns   []string          `yaml:"dead_columns"`
}

func (t *Transformer) State() State {
	formats := make(map[string]string, len(t.usable))
	for _, col := range t.usable {
		formats[col] = t.formats[col]
	}
	return State{
		UsableColumns: append([]string(nil), t.usable...),
		Formats:       formats,
		DeadColumns:   append([]string(nil), t.dead...),
	}
}

// FromState rebuilds a fitted transformer without touching any metadata
// store.
func FromState(s State) *Transformer {
	t := New()
	t.usable = append([]string(nil), s.UsableColumns...)
	t.dead = append([]string(nil), s.DeadColumns...)
	for k, v := range s.Formats {
		t.formats[k] = v
	}
	t.fitted = true
	return t
}
