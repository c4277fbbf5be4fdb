package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hailam/attacktables"
)

func TestSelect(t *testing.T) {
	tables, err := Select([]string{"pawn", "knight"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	var keys []string
	for _, tab := range tables {
		keys = append(keys, tab.Key)
	}
	// Canonical order, independent of selector order.
	want := []string{
		"knight",
		"pawn_captures_white", "pawn_captures_black",
		"pawn_attackers_white", "pawn_attackers_black",
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Select keys mismatch (-want +got):\n%s", diff)
	}

	if _, err := Select([]string{"rook"}); err == nil {
		t.Error("Select accepted an unknown table name")
	}
	if _, err := Select([]string{"", "  "}); err == nil {
		t.Error("Select accepted an empty selection")
	}
}

func TestAllShapes(t *testing.T) {
	for _, tab := range All() {
		if (tab.Flat == nil) == (tab.Grid == nil) {
			t.Errorf("table %s must carry exactly one of Flat and Grid", tab.Key)
			continue
		}
		if tab.Flat != nil && len(tab.Flat) != 64 {
			t.Errorf("table %s has %d entries, want 64", tab.Key, len(tab.Flat))
		}
		if tab.Grid != nil {
			if len(tab.Grid) != 64 {
				t.Errorf("table %s has %d rows, want 64", tab.Key, len(tab.Grid))
			}
			for i, row := range tab.Grid {
				if len(row) != 64 {
					t.Errorf("table %s row %d has %d entries, want 64", tab.Key, i, len(row))
				}
			}
		}
	}
}

func TestAllMatchesCore(t *testing.T) {
	byKey := make(map[string]Table)
	for _, tab := range All() {
		byKey[tab.Key] = tab
	}

	// Entry i must correspond to square index i (and row s, column t for
	// the pair tables).
	if got := byKey["knight"].Flat[attacktables.A1]; got != 0x20400 {
		t.Errorf("knight entry 0 = %#x, want 0x20400", uint64(got))
	}
	if got := byKey["between"].Grid[attacktables.A1][attacktables.H8]; got != 0x0040201008040200 {
		t.Errorf("between[a1][h8] = %#x, want 0x0040201008040200", uint64(got))
	}
	if got := byKey["pawn_captures_white"].Flat[attacktables.E4]; got != attacktables.PawnCaptures(attacktables.E4, attacktables.White) {
		t.Errorf("pawn_captures_white[e4] = %#x, out of step with the core", uint64(got))
	}
	if got := byKey["pawn_attackers_black"].Flat[attacktables.E4]; got != attacktables.PawnAttackers(attacktables.E4, attacktables.Black) {
		t.Errorf("pawn_attackers_black[e4] = %#x, out of step with the core", uint64(got))
	}
}

func TestWriteGoGolden(t *testing.T) {
	tables := []Table{
		{
			Key:  "knight",
			Name: "KnightAttacks",
			Doc:  "the knight attack targets for each square",
			Flat: []attacktables.Bitboard{0x20400, 0x50800, 0xa1100, 0x142200, 0x284400},
		},
		{
			Key:  "between",
			Name: "Between",
			Grid: [][]attacktables.Bitboard{{1, 2}, {3, 4}},
		},
	}

	want := `// Code generated by attacktables-gen. DO NOT EDIT.

package tables

// KnightAttacks holds the knight attack targets for each square.
var KnightAttacks = [64]uint64{
	0x0000000000020400, 0x0000000000050800, 0x00000000000a1100, 0x0000000000142200,
	0x0000000000284400,
}

var Between = [64][64]uint64{
	{
		0x0000000000000001, 0x0000000000000002,
	},
	{
		0x0000000000000003, 0x0000000000000004,
	},
}
`

	var buf bytes.Buffer
	if err := WriteGo(&buf, "tables", tables); err != nil {
		t.Fatalf("WriteGo failed: %v", err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteGo output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteGoParses(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGo(&buf, "tables", All()); err != nil {
		t.Fatalf("WriteGo failed: %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "tables.go", buf.Bytes(), 0); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
}

func TestWriteJSONGolden(t *testing.T) {
	tables := []Table{
		{
			Key:  "knight",
			Name: "KnightAttacks",
			Flat: []attacktables.Bitboard{0x20400, 0x50800},
		},
	}

	want := `[
  {
    "table": "knight",
    "entries": [
      "0x0000000000020400",
      "0x0000000000050800"
    ]
  }
]
`

	var buf bytes.Buffer
	if err := WriteJSON(&buf, tables); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteJSON output mismatch (-want +got):\n%s", diff)
	}
}
