package table

import (
	"testing"
	"time"
)

func TestAddColumn_RejectsDuplicatesAndRaggedRows(t *testing.T) {
	tb := New()
	if err := tb.AddColumn("a", []Value{Text("x"), Text("y")}); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := tb.AddColumn("a", []Value{Text("z"), Text("w")}); err == nil {
		t.Fatal("expected error for duplicate column")
	}
	if err := tb.AddColumn("b", []Value{Text("z")}); err == nil {
		t.Fatal("expected error for mismatched row count")
	}
}

func TestDropColumns_ReturnsNewTable(t *testing.T) {
	tb := New()
	_ = tb.AddColumn("a", []Value{Text("x")})
	_ = tb.AddColumn("b", []Value{Text("y")})

	out := tb.DropColumns("b", "nope")
	if out.HasColumn("b") {
		t.Fatal("b should be dropped")
	}
	if !tb.HasColumn("b") {
		t.Fatal("input table was mutated")
	}
	if got := out.Columns(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("columns = %v", got)
	}
}

func TestWithColumn_ReplacesWithoutMutating(t *testing.T) {
	tb := New()
	_ = tb.AddColumn("a", []Value{Text("x")})
	_ = tb.AddColumn("b", []Value{Text("y")})

	out, err := tb.WithColumn("a", []Value{Number(1)})
	if err != nil {
		t.Fatalf("with column: %v", err)
	}
	got, _ := out.Column("a")
	if got[0].Kind() != KindNumber {
		t.Fatalf("a[0] = %s", got[0].Kind())
	}
	orig, _ := tb.Column("a")
	if orig[0].Kind() != KindText {
		t.Fatal("input table was mutated")
	}
	// Column order is preserved on replace.
	if cols := out.Columns(); cols[0] != "a" || cols[1] != "b" {
		t.Fatalf("columns = %v", cols)
	}

	if _, err := tb.WithColumn("c", []Value{Number(1), Number(2)}); err == nil {
		t.Fatal("expected error for mismatched row count")
	}
}

func TestValue_Render(t *testing.T) {
	if got := Missing().Render(); got != "" {
		t.Fatalf("missing renders %q", got)
	}
	if got := Number(1672531200).Render(); got != "1672531200" {
		t.Fatalf("number renders %q", got)
	}
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := TimeValue(ts).Render(); got != "2023-01-01T00:00:00Z" {
		t.Fatalf("time renders %q", got)
	}
	if got := Text("abc").Render(); got != "abc" {
		t.Fatalf("text renders %q", got)
	}
}
