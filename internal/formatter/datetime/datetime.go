// Package datetime converts datetime-valued columns to numeric timestamps
// for downstream modeling and reverses generated timestamps back to
// formatted strings. Column formats are strftime-style templates supplied
// by the metadata store.
package datetime

import (
	"math"
	"time"

	"github.com/ncruces/go-strftime"

	"tabprep/internal/formatter"
	"tabprep/internal/logging"
	"tabprep/internal/table"
	"tabprep/internal/telemetry"
)

// Sentinel is emitted for any cell that cannot be reconstructed as a
// formatted date.
const Sentinel = "No Datetime"

// maxTimestamp is 9999-12-31T23:59:59 UTC in epoch seconds. Values above
// it (or below zero) are not convertible to calendar time on every
// platform, so reverse conversion degrades them to the sentinel. Negative
// timestamps therefore do not survive a round trip; that asymmetry is
// intentional.
const maxTimestamp = 253402300799

type Transformer struct {
	usable  []string
	formats map[string]string
	dead    []string
	fitted  bool
}

func New() *Transformer {
	return &Transformer{formats: make(map[string]string)}
}

// Fit records which datetime-classified columns carry a format string.
// Columns without one are dead: they are removed from the metadata store
// and from every table that passes through Convert. Usable columns still
// classified as discrete are reclassified to datetime.
func (t *Transformer) Fit(meta formatter.Metadata) {
	t.formats = meta.FormatMapping()
	if t.formats == nil {
		t.formats = make(map[string]string)
	}

	var usable, dead []string
	for _, col := range meta.DatetimeColumns() {
		if t.formats[col] != "" {
			usable = append(usable, col)
		} else {
			dead = append(dead, col)
			telemetry.DeadColumns.Inc()
			logging.L().Warn("datetime: column has no format and will be removed", "column", col)
		}
	}

	discrete := make(map[string]bool)
	for _, col := range meta.DiscreteColumns() {
		discrete[col] = true
	}
	allDiscrete := true
	for _, col := range usable {
		if !discrete[col] {
			allDiscrete = false
			break
		}
	}
	// Skip when some columns were already moved, e.g. on a re-fit.
	if allDiscrete {
		if err := meta.Reclassify(usable, "discrete", "datetime"); err != nil {
			logging.L().Warn("datetime: reclassify failed", "err", err)
		}
	}
	meta.RemoveColumns(dead)

	t.usable = usable
	t.dead = dead
	t.fitted = true
	logging.L().Info("datetime formatter fitted", "usable", len(usable), "dead", len(dead))
}

// Convert maps every usable column's cells to numeric timestamps and drops
// dead columns. The input table is never mutated.
func (t *Transformer) Convert(in *table.Table) *table.Table {
	if len(t.usable) == 0 {
		logging.L().Info("datetime convert: no datetime columns, table unchanged")
		return in
	}

	out := in.DropColumns(t.dead...)
	for _, col := range t.dead {
		if in.HasColumn(col) {
			logging.L().Warn("datetime convert: column removed for missing format", "column", col)
		}
	}

	for _, col := range t.usable {
		vals, ok := out.Column(col)
		if !ok {
			logging.L().Warn("datetime convert: column not in table", "column", col)
			continue
		}
		format := t.formats[col]
		converted := make([]table.Value, len(vals))
		for i, v := range vals {
			converted[i] = toTimestamp(v, format, col)
		}
		out, _ = out.WithColumn(col, converted)
	}
	return out
}

// toTimestamp is the per-cell forward rule. Failure never escapes the
// cell: unparseable values degrade to the missing marker.
func toTimestamp(v table.Value, format, col string) table.Value {
	switch v.Kind() {
	case table.KindMissing:
		return v
	case table.KindTime:
		tm := v.Time()
		telemetry.CellsConverted.WithLabelValues(col).Inc()
		return table.Number(float64(tm.Unix()) + float64(tm.Nanosecond())/1e9)
	case table.KindNumber:
		// Already a numeric timestamp.
		return v
	default:
		tm, err := strftime.Parse(format, v.Text())
		if err != nil {
			telemetry.ParseFailures.WithLabelValues(col).Inc()
			logging.L().Warn("datetime convert: cell set to missing",
				"value", v.Text(), "kind", v.Kind().String(), "format", format, "err", err)
			return table.Missing()
		}
		telemetry.CellsConverted.WithLabelValues(col).Inc()
		return table.Number(float64(tm.Unix()) + float64(tm.Nanosecond())/1e9)
	}
}

// ReverseConvert maps numeric timestamps back to formatted strings. Every
// cell of a processed column comes out as either a formatted date or
// exactly the sentinel; no error reaches the caller.
func (t *Transformer) ReverseConvert(in *table.Table) *table.Table {
	if len(t.usable) == 0 {
		logging.L().Info("datetime reverse: no datetime columns, table unchanged")
		return in
	}

	out := in.Clone()
	for _, col := range t.usable {
		vals, ok := out.Column(col)
		if !ok {
			logging.L().Error("datetime reverse: column not in table", "column", col)
			continue
		}
		format := t.formats[col]
		rendered := make([]table.Value, len(vals))
		for i, v := range vals {
			rendered[i] = toDatetime(v, format, col)
		}
		out, _ = out.WithColumn(col, rendered)
	}
	return out
}

// toDatetime is the per-cell backward rule. Timestamps outside
// [0, maxTimestamp], missing markers, and cells of any unexpected kind all
// yield the sentinel.
func toDatetime(v table.Value, format, col string) table.Value {
	if v.IsMissing() {
		return table.Text(Sentinel)
	}
	if v.Kind() != table.KindNumber {
		telemetry.RenderFailures.WithLabelValues(col).Inc()
		logging.L().Debug("datetime reverse: non-numeric cell", "kind", v.Kind().String())
		return table.Text(Sentinel)
	}
	f := v.Number()
	if math.IsNaN(f) || f < 0 || f > maxTimestamp {
		return table.Text(Sentinel)
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return table.Text(strftime.Format(format, time.Unix(sec, nsec).UTC()))
}

func init() {
	formatter.Register("datetime", func() formatter.Formatter { return New() })
}
