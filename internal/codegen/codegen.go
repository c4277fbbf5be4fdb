// Package codegen serializes the computed attack tables into the
// constant-table formats consumed by downstream engines.
package codegen

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/attacktables"
)

// Table is one named table ready for serialization. Exactly one of Flat
// (64 entries, square-indexed) and Grid (64x64 entries, source- then
// target-indexed) is non-nil.
type Table struct {
	Key  string // selector and JSON key, e.g. "pawn_captures_white"
	Name string // generated Go identifier, e.g. "WhitePawnCaptures"
	Doc  string // one-line description for the generated declaration
	Flat []attacktables.Bitboard
	Grid [][]attacktables.Bitboard
}

// All returns every table in canonical emission order: pair tables
// first, then the leapers, then the four pawn tables.
func All() []Table {
	return []Table{
		{
			Key:  "between",
			Name: "Between",
			Doc:  "the squares strictly between two aligned squares, indexed [source][target]",
			Grid: grid(attacktables.Between),
		},
		{
			Key:  "line",
			Name: "Line",
			Doc:  "the full line through two aligned squares, indexed [source][target]",
			Grid: grid(attacktables.Line),
		},
		{
			Key:  "knight",
			Name: "KnightAttacks",
			Doc:  "the knight attack targets for each square",
			Flat: flat(attacktables.KnightAttacks),
		},
		{
			Key:  "king",
			Name: "KingAttacks",
			Doc:  "the king attack targets for each square",
			Flat: flat(attacktables.KingAttacks),
		},
		{
			Key:  "pawn_captures_white",
			Name: "WhitePawnCaptures",
			Doc:  "the white pawn capture targets for each square",
			Flat: flatColor(attacktables.PawnCaptures, attacktables.White),
		},
		{
			Key:  "pawn_captures_black",
			Name: "BlackPawnCaptures",
			Doc:  "the black pawn capture targets for each square",
			Flat: flatColor(attacktables.PawnCaptures, attacktables.Black),
		},
		{
			Key:  "pawn_attackers_white",
			Name: "WhitePawnAttackers",
			Doc:  "the squares holding a white pawn attack on each square",
			Flat: flatColor(attacktables.PawnAttackers, attacktables.White),
		},
		{
			Key:  "pawn_attackers_black",
			Name: "BlackPawnAttackers",
			Doc:  "the squares holding a black pawn attack on each square",
			Flat: flatColor(attacktables.PawnAttackers, attacktables.Black),
		},
	}
}

// families maps the selector names accepted on the command line to table
// keys. Every table key also selects itself.
var families = map[string][]string{
	"between": {"between"},
	"line":    {"line"},
	"knight":  {"knight"},
	"king":    {"king"},
	"pawn": {
		"pawn_captures_white", "pawn_captures_black",
		"pawn_attackers_white", "pawn_attackers_black",
	},
	"pawn_captures_white":  {"pawn_captures_white"},
	"pawn_captures_black":  {"pawn_captures_black"},
	"pawn_attackers_white": {"pawn_attackers_white"},
	"pawn_attackers_black": {"pawn_attackers_black"},
}

// Select resolves selector names into tables, preserving canonical
// emission order regardless of selector order.
func Select(keys []string) ([]Table, error) {
	want := make(map[string]bool)
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		expanded, ok := families[k]
		if !ok {
			return nil, fmt.Errorf("unknown table %q", k)
		}
		for _, key := range expanded {
			want[key] = true
		}
	}
	if len(want) == 0 {
		return nil, fmt.Errorf("no tables selected")
	}

	var out []Table
	for _, t := range All() {
		if want[t.Key] {
			out = append(out, t)
		}
	}
	return out, nil
}

func flat(fn func(attacktables.Square) attacktables.Bitboard) []attacktables.Bitboard {
	out := make([]attacktables.Bitboard, 64)
	for sq := attacktables.A1; sq <= attacktables.H8; sq++ {
		out[sq] = fn(sq)
	}
	return out
}

func flatColor(fn func(attacktables.Square, attacktables.Color) attacktables.Bitboard, c attacktables.Color) []attacktables.Bitboard {
	out := make([]attacktables.Bitboard, 64)
	for sq := attacktables.A1; sq <= attacktables.H8; sq++ {
		out[sq] = fn(sq, c)
	}
	return out
}

func grid(fn func(s, t attacktables.Square) attacktables.Bitboard) [][]attacktables.Bitboard {
	out := make([][]attacktables.Bitboard, 64)
	for s := attacktables.A1; s <= attacktables.H8; s++ {
		row := make([]attacktables.Bitboard, 64)
		for t := attacktables.A1; t <= attacktables.H8; t++ {
			row[t] = fn(s, t)
		}
		out[s] = row
	}
	return out
}

// WriteGo emits the tables as a generated Go source file with one
// exported var per table.
func WriteGo(w io.Writer, pkg string, tables []Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by attacktables-gen. DO NOT EDIT.\n\npackage %s\n", pkg)

	for _, t := range tables {
		b.WriteByte('\n')
		if t.Doc != "" {
			fmt.Fprintf(&b, "// %s holds %s.\n", t.Name, t.Doc)
		}
		if t.Grid != nil {
			fmt.Fprintf(&b, "var %s = [64][64]uint64{\n", t.Name)
			for _, row := range t.Grid {
				b.WriteString("\t{\n")
				writeEntries(&b, "\t\t", row)
				b.WriteString("\t},\n")
			}
			b.WriteString("}\n")
		} else {
			fmt.Fprintf(&b, "var %s = [64]uint64{\n", t.Name)
			writeEntries(&b, "\t", t.Flat)
			b.WriteString("}\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeEntries formats entries in ascending square order, four per line.
func writeEntries(b *strings.Builder, indent string, entries []attacktables.Bitboard) {
	for i, e := range entries {
		if i%4 == 0 {
			b.WriteString(indent)
		}
		fmt.Fprintf(b, "0x%016x,", uint64(e))
		if i%4 == 3 || i == len(entries)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
}

type jsonTable struct {
	Table   string `json:"table"`
	Entries any    `json:"entries"`
}

// WriteJSON emits the tables as a JSON array of table objects. Entries
// are hex strings; a JSON consumer keeping them as 64-bit floats would
// corrupt the high bits.
func WriteJSON(w io.Writer, tables []Table) error {
	out := make([]jsonTable, 0, len(tables))
	for _, t := range tables {
		if t.Grid != nil {
			rows := make([][]string, len(t.Grid))
			for i, row := range t.Grid {
				rows[i] = hexEntries(row)
			}
			out = append(out, jsonTable{Table: t.Key, Entries: rows})
		} else {
			out = append(out, jsonTable{Table: t.Key, Entries: hexEntries(t.Flat)})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func hexEntries(entries []attacktables.Bitboard) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("0x%016x", uint64(e))
	}
	return out
}
