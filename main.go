// psqt - inspect, render and snapshot the piece-square tables
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hailam/psqt/internal/board"
	"github.com/hailam/psqt/internal/engine"
	"github.com/hailam/psqt/internal/psqt"
	"github.com/hailam/psqt/internal/render"
	"github.com/hailam/psqt/internal/storage"
	"github.com/hailam/psqt/internal/variant"
)

const usageText = `usage: psqt <command> [flags]

commands:
  show      print a piece's table as a colored grid
  dump      write tables as JSON
  png       render a piece's table to a PNG heatmap
  eval      score a FEN placement or the final position of a PGN game
  snapshot  store table fingerprints in the local database
  verify    compare tables against the stored snapshot

Run "psqt <command> -h" for the flags of a command.
Set PSQT_VARIANTS to a comma separated list to build only those variants.`

var errDrift = errors.New("tables drifted from snapshot")

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "show":
		err = runShow(args)
	case "dump":
		err = runDump(args)
	case "png":
		err = runPNG(args)
	case "eval":
		err = runEval(args)
	case "snapshot":
		err = runSnapshot(args)
	case "verify":
		err = runVerify(args)
	case "help", "-h", "--help":
		fmt.Println(usageText)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usageText)
		os.Exit(2)
	}

	if errors.Is(err, errDrift) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// buildTables returns the process-wide tables unless PSQT_VARIANTS narrows
// the set.
func buildTables() (*psqt.Tables, error) {
	list := os.Getenv("PSQT_VARIANTS")
	if list == "" {
		return psqt.Default(), nil
	}
	set, err := variant.ParseSet(list)
	if err != nil {
		return nil, fmt.Errorf("PSQT_VARIANTS: %w", err)
	}
	return psqt.New(set), nil
}

// pieceFlags are shared by the commands that look at one piece table.
type pieceFlags struct {
	variant *string
	piece   *string
	phase   *string
}

func addPieceFlags(fs *flag.FlagSet) pieceFlags {
	return pieceFlags{
		variant: fs.String("variant", "chess", "variant name"),
		piece:   fs.String("piece", "N", "piece as a FEN letter or name (white-knight)"),
		phase:   fs.String("phase", "mg", "mg or eg"),
	}
}

func (f pieceFlags) resolve() (*psqt.VariantTable, board.Piece, variant.Phase, error) {
	tables, err := buildTables()
	if err != nil {
		return nil, board.NoPiece, 0, err
	}
	v, err := variant.Parse(*f.variant)
	if err != nil {
		return nil, board.NoPiece, 0, err
	}
	vt, err := tables.Lookup(v)
	if err != nil {
		return nil, board.NoPiece, 0, err
	}
	pc, ok := board.ParsePiece(*f.piece)
	if !ok {
		return nil, board.NoPiece, 0, fmt.Errorf("unknown piece %q", *f.piece)
	}

	var ph variant.Phase
	switch *f.phase {
	case "mg":
		ph = variant.MG
	case "eg":
		ph = variant.EG
	default:
		return nil, board.NoPiece, 0, fmt.Errorf("unknown phase %q", *f.phase)
	}
	return vt, pc, ph, nil
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	pf := addPieceFlags(fs)
	fs.Parse(args)

	vt, pc, ph, err := pf.resolve()
	if err != nil {
		return err
	}
	fmt.Println(render.Terminal(vt, pc, ph))
	return nil
}

func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ExitOnError)
	pf := addPieceFlags(fs)
	out := fs.String("o", "psqt.png", "output file")
	cell := fs.Int("cell", 64, "square size in pixels")
	svg := fs.Bool("svg", false, "write SVG instead of PNG")
	fs.Parse(args)

	vt, pc, ph, err := pf.resolve()
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	if *svg {
		_, err = f.WriteString(render.SVG(vt, pc, ph, *cell))
	} else {
		err = render.PNG(f, vt, pc, ph, *cell)
	}
	if err != nil {
		return err
	}
	log.Printf("wrote %s", *out)
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	only := fs.String("variant", "", "dump a single variant")
	fs.Parse(args)

	tables, err := buildTables()
	if err != nil {
		return err
	}

	vs := tables.Set().Variants()
	if *only != "" {
		v, err := variant.Parse(*only)
		if err != nil {
			return err
		}
		vs = []variant.Variant{v}
	}

	var snaps []*storage.VariantSnapshot
	for _, v := range vs {
		vt, err := tables.Lookup(v)
		if err != nil {
			return err
		}
		snaps = append(snaps, storage.NewSnapshot(vt))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snaps)
}

func runEval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	name := fs.String("variant", "chess", "variant name")
	fen := fs.String("fen", board.StartFEN, "position (only the board field is used)")
	pgn := fs.String("pgn", "", "PGN file to play through, - for stdin (overrides -fen)")
	fs.Parse(args)

	tables, err := buildTables()
	if err != nil {
		return err
	}
	v, err := variant.Parse(*name)
	if err != nil {
		return err
	}

	eng := engine.NewEvaluator(tables)
	var res engine.Result
	switch *pgn {
	case "":
		res, err = eng.EvaluateFEN(v, *fen)
	case "-":
		res, err = eng.EvaluatePGN(v, os.Stdin)
	default:
		f, ferr := os.Open(*pgn)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		res, err = eng.EvaluatePGN(v, f)
	}
	if err != nil {
		return err
	}
	fmt.Printf("score %s phase %d value %d\n", res.Score, res.Phase, res.Value)
	return nil
}

func openStorage(dir string) (*storage.Storage, error) {
	if dir != "" {
		return storage.Open(dir)
	}
	return storage.NewStorage()
}

func runSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	dir := fs.String("db", "", "database directory (default: platform data dir)")
	fs.Parse(args)

	tables, err := buildTables()
	if err != nil {
		return err
	}
	store, err := openStorage(*dir)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(tables); err != nil {
		return err
	}
	log.Printf("saved %d variants: %s", tables.Set().Len(), tables.Set())
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	dir := fs.String("db", "", "database directory (default: platform data dir)")
	fs.Parse(args)

	tables, err := buildTables()
	if err != nil {
		return err
	}
	store, err := openStorage(*dir)
	if err != nil {
		return err
	}
	defer store.Close()

	drift, err := store.Verify(tables)
	if err != nil {
		return err
	}
	if len(drift) == 0 {
		log.Printf("all %d variants match", tables.Set().Len())
		return nil
	}
	for _, d := range drift {
		log.Print(d)
	}
	return errDrift
}
