package attack

import (
	"reflect"
	"testing"

	"chess-attacks/board"
)

func TestPinsAbsolute(t *testing.T) {
	b := mustBoard(t, "4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1")
	want := []Pin{{
		Attacker: placed(board.BlackRook, "e7"),
		Pinned:   placed(board.WhitePawn, "e2"),
		Target:   placed(board.WhiteKing, "e1"),
		Absolute: true,
	}}
	if got := Pins(AllAttacksAndPins(b)); !reflect.DeepEqual(got, want) {
		t.Fatalf("pins = %+v, want %+v", got, want)
	}
	if got := PinnedPieces(b, board.White); !reflect.DeepEqual(got, []board.PlacedPiece{placed(board.WhitePawn, "e2")}) {
		t.Fatalf("pinned white pieces = %v", got)
	}
	if got := PinnedPieces(b, board.Black); len(got) != 0 {
		t.Fatalf("no black piece is pinned, got %v", got)
	}
}

func TestPinsRelative(t *testing.T) {
	// Bb5 pins the c6 knight to the d7 queen; the king behind both is two
	// blockers away and does not count.
	b := mustBoard(t, "4k3/3q4/2n5/1B6/8/8/8/4K3 w - - 0 1")
	want := []Pin{{
		Attacker: placed(board.WhiteBishop, "b5"),
		Pinned:   placed(board.BlackKnight, "c6"),
		Target:   placed(board.BlackQueen, "d7"),
	}}
	if got := Pins(AllAttacksAndPins(b)); !reflect.DeepEqual(got, want) {
		t.Fatalf("pins = %+v, want %+v", got, want)
	}
	if got := PinnedPieces(b, board.Black); len(got) != 0 {
		t.Fatalf("relative pins are not absolute, got %v", got)
	}
}

func TestPinsIgnoreFriendlyBlockers(t *testing.T) {
	// The opening position is full of one-blocker x-rays, none of them pins.
	if got := Pins(AllAttacksAndPins(board.StartingPosition())); len(got) != 0 {
		t.Fatalf("unexpected pins in the opening: %+v", got)
	}
}

func TestSkewers(t *testing.T) {
	b := mustBoard(t, "r3k3/8/8/q7/8/8/8/R3K3 w - - 0 1")
	attacks := AllAttacksAndPins(b)
	want := []Skewer{{
		Attacker: placed(board.WhiteRook, "a1"),
		Front:    placed(board.BlackQueen, "a5"),
		Behind:   placed(board.BlackRook, "a8"),
	}}
	if got := Skewers(attacks); !reflect.DeepEqual(got, want) {
		t.Fatalf("skewers = %+v, want %+v", got, want)
	}
	if got := Pins(attacks); len(got) != 0 {
		t.Fatalf("a skewer is not a pin, got %+v", got)
	}
}

func TestExchange(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		side board.Color
		want int
	}{
		{"undefended knight", "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", "d5", board.White, 300},
		{"defended knight", "4k3/8/2p5/3n4/4P3/8/8/4K3 w - - 0 1", "d5", board.White, 200},
		{"queen takes defended pawn", "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1", "d5", board.White, -800},
		{"battery revealed behind rook", "3rk3/8/8/3p4/8/8/3R4/3RK3 w - - 0 1", "d5", board.White, 100},
		{"empty square", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d5", board.White, 0},
		{"own piece", "4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1", "e4", board.White, 0},
		{"no attacker", "4k3/8/8/3n4/8/8/8/4K3 w - - 0 1", "d5", board.White, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, tc.fen)
			if got := Exchange(b, sq(tc.sq), tc.side); got != tc.want {
				t.Fatalf("Exchange(%s) = %d, want %d", tc.sq, got, tc.want)
			}
			if b.FEN() != mustBoard(t, tc.fen).FEN() {
				t.Fatalf("Exchange modified the snapshot")
			}
		})
	}
}
