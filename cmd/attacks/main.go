package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-attacks/adapt"
	"chess-attacks/attack"
	"chess-attacks/board"
	"chess-attacks/render"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	source := flag.String("source", "native", "FEN parser: native, dragontooth, goose or notnil")
	squares := flag.String("square", "", "Comma separated squares to query, e.g. e4,f7")
	color := flag.String("color", "", "Restrict square queries to one side (w or b)")
	list := flag.Bool("list", true, "Print every attack record grouped by attacker")
	pins := flag.Bool("pins", false, "Print pins, skewers and checks")
	svgOut := flag.String("svg", "", "Write an SVG attack map to this file")
	flip := flag.Bool("flip", false, "Draw the SVG from Black's side")
	repeat := flag.Int("repeat", 0, "Time N enumerations of the position and report the rate")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	snap, err := load(*source, *fen)
	if err != nil {
		log.Fatalf("loading position: %v", err)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	fmt.Print(snap.Draw())
	attacks := attack.AllAttacksAndPins(snap)

	if *list {
		printAttacks(attacks)
	}
	if *pins {
		printTactics(snap, attacks)
	}
	if *squares != "" {
		sides := []board.Color{board.White, board.Black}
		switch *color {
		case "":
		case "w":
			sides = sides[:1]
		case "b":
			sides = sides[1:]
		default:
			log.Fatalf("-color must be w or b, got %q", *color)
		}
		for _, alg := range strings.Split(*squares, ",") {
			sq, err := board.ParseSquare(alg)
			if err != nil {
				log.Fatalf("square %q: %v", alg, err)
			}
			for _, c := range sides {
				fmt.Printf("%s attacked by %s: %t %v\n", sq, c, attack.IsAttacked(snap, sq, c), attack.AttackersTo(snap, sq, c))
			}
		}
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			log.Fatalf("creating svg: %v", err)
		}
		if err := render.AttackMap(f, snap, render.Options{Flipped: *flip, ShowPins: true}); err != nil {
			log.Fatalf("writing svg: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("closing svg: %v", err)
		}
	}

	if *repeat > 0 {
		var records int
		start := time.Now()
		for i := 0; i < *repeat; i++ {
			records += len(attack.AllAttacksAndPins(snap))
		}
		elapsed := time.Since(start)
		fmt.Printf("enumerations %d \trecords %d \ttime %s \tper-call %s\n",
			*repeat, records, elapsed, elapsed/time.Duration(*repeat))
	}
}

// load parses fen with the chosen library and returns a snapshot of it.
func load(source, fen string) (*board.Board, error) {
	switch source {
	case "native":
		return board.ParseFEN(fen)
	case "dragontooth":
		dt := dragontoothmg.ParseFen(fen)
		return adapt.FromDragontooth(&dt), nil
	case "goose":
		gb, err := goosemg.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		return adapt.FromGoose(gb), nil
	case "notnil":
		opt, err := chess.FEN(fen)
		if err != nil {
			return nil, err
		}
		return adapt.FromNotnil(chess.NewGame(opt).Position()), nil
	}
	return nil, fmt.Errorf("unknown source %q", source)
}

func printAttacks(attacks []attack.Attack) {
	grouped := make(map[board.Square][]attack.Attack)
	for _, a := range attacks {
		grouped[a.Attacker.Square] = append(grouped[a.Attacker.Square], a)
	}
	keys := maps.Keys(grouped)
	slices.Sort(keys)
	for _, sq := range keys {
		group := grouped[sq]
		fmt.Printf("%s:", group[0].Attacker)
		for _, a := range group {
			fmt.Printf(" %s", strings.TrimPrefix(a.String(), a.Attacker.String()))
		}
		fmt.Println()
	}
	fmt.Printf("Total: %d\n", len(attacks))
}

func printTactics(snap *board.Board, attacks []attack.Attack) {
	for _, p := range attack.Pins(attacks) {
		kind := "relative"
		if p.Absolute {
			kind = "absolute"
		}
		fmt.Printf("pin (%s): %s pins %s to %s\n", kind, p.Attacker, p.Pinned, p.Target)
	}
	for _, s := range attack.Skewers(attacks) {
		fmt.Printf("skewer: %s skewers %s in front of %s\n", s.Attacker, s.Front, s.Behind)
	}
	for _, c := range []board.Color{board.White, board.Black} {
		if checkers := attack.Checkers(snap, c); len(checkers) > 0 {
			fmt.Printf("%s in check from %v\n", c, checkers)
		}
	}
}
