package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hailam/attacktables"
	"github.com/hailam/attacktables/internal/codegen"
	"github.com/hailam/attacktables/internal/diagram"
	"github.com/hailam/attacktables/internal/snapshot"
)

var (
	format    = flag.String("format", "go", "output format: go, json, svg or png")
	tableList = flag.String("tables", "between,line,knight,king,pawn", "comma-separated tables to emit")
	pkgName   = flag.String("pkg", "tables", "package name for generated Go source")
	outPath   = flag.String("o", "", "output file (default stdout)")
	record    = flag.Bool("record", false, "record all tables as the new snapshot baseline")
	verify    = flag.Bool("verify", false, "verify all tables against the latest snapshot baseline")
	dbDir     = flag.String("db", "", "snapshot store directory (default per-user data dir)")
	diagramOf = flag.String("diagram", "", "entry to render for svg/png, table:square[:square] (e.g. knight:e4, between:a1:h8)")
	size      = flag.Int("size", 256, "image size in pixels for svg and png output")
	coords    = flag.Bool("coords", false, "draw coordinate labels on svg output")
)

func main() {
	flag.Parse()

	if *verify {
		if err := verifySnapshot(); err != nil {
			log.Fatal(err)
		}
		return
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create %s: %v", *outPath, err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch *format {
	case "go", "json":
		err = emitTables(w)
	case "svg", "png":
		err = renderDiagram(w)
	default:
		log.Fatalf("unknown format %q, want go, json, svg or png", *format)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *record {
		if err := recordSnapshot(); err != nil {
			log.Fatal(err)
		}
	}
}

// emitTables writes the selected tables in the chosen source format.
func emitTables(w io.Writer) error {
	selected, err := codegen.Select(strings.Split(*tableList, ","))
	if err != nil {
		return err
	}
	if *format == "json" {
		return codegen.WriteJSON(w, selected)
	}
	return codegen.WriteGo(w, *pkgName, selected)
}

// renderDiagram draws the entry named by -diagram as a board image.
func renderDiagram(w io.Writer) error {
	if *diagramOf == "" {
		return fmt.Errorf("-format %s needs -diagram table:square[:square]", *format)
	}
	d, err := parseDiagram(*diagramOf)
	if err != nil {
		return err
	}
	d.Size = *size
	d.Coords = *coords

	if *format == "png" {
		return d.WritePNG(w)
	}
	return d.WriteSVG(w)
}

// parseDiagram resolves a table:square[:square] selector into the mask to
// draw and the squares to highlight. Pair tables take two squares, the
// leaper and pawn tables one.
func parseDiagram(arg string) (*diagram.Diagram, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("bad diagram %q, want table:square[:square]", arg)
	}

	source, err := attacktables.ParseSquare(parts[1])
	if err != nil {
		return nil, err
	}
	target := attacktables.NoSquare
	if len(parts) == 3 {
		if target, err = attacktables.ParseSquare(parts[2]); err != nil {
			return nil, err
		}
	}

	var mask attacktables.Bitboard
	switch parts[0] {
	case "between", "line":
		if target == attacktables.NoSquare {
			return nil, fmt.Errorf("table %q needs two squares", parts[0])
		}
		if parts[0] == "between" {
			mask = attacktables.Between(source, target)
		} else {
			mask = attacktables.Line(source, target)
		}
	case "knight":
		mask = attacktables.KnightAttacks(source)
	case "king":
		mask = attacktables.KingAttacks(source)
	case "pawn_captures_white":
		mask = attacktables.PawnCaptures(source, attacktables.White)
	case "pawn_captures_black":
		mask = attacktables.PawnCaptures(source, attacktables.Black)
	case "pawn_attackers_white":
		mask = attacktables.PawnAttackers(source, attacktables.White)
	case "pawn_attackers_black":
		mask = attacktables.PawnAttackers(source, attacktables.Black)
	default:
		return nil, fmt.Errorf("unknown table %q", parts[0])
	}

	d := diagram.New(mask)
	d.Source = source
	d.Target = target
	return d, nil
}

// recordSnapshot stores digests of all tables as the new baseline.
func recordSnapshot() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snap := snapshot.Capture(codegen.All())
	if err := store.Put(snap); err != nil {
		return err
	}
	log.Printf("recorded snapshot %s (%d tables)", snap.ID, len(snap.Tables))
	return nil
}

// verifySnapshot checks all tables against the latest recorded baseline.
func verifySnapshot() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	baseline, err := store.Latest()
	if err != nil {
		return err
	}

	if drift := snapshot.Diff(baseline, snapshot.Capture(codegen.All())); len(drift) > 0 {
		return fmt.Errorf("tables drifted from snapshot %s: %s", baseline.ID, strings.Join(drift, ", "))
	}
	log.Printf("tables match snapshot %s", baseline.ID)
	return nil
}

// openStore opens the snapshot store at -db, or the per-user default.
func openStore() (*snapshot.Store, error) {
	dir := *dbDir
	if dir == "" {
		var err error
		if dir, err = snapshot.DefaultDir(); err != nil {
			return nil, err
		}
	}
	return snapshot.Open(dir)
}
