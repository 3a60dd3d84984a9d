package attack

import "chess-attacks/board"

// PieceValue is the material scale used for pins, skewers and exchanges.
var PieceValue = [board.King + 1]int{
	board.King:   5000,
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
}

// Pin is a slider attack whose line to Target is blocked by exactly one
// piece of Target's side, worth less than Target.
type Pin struct {
	Attacker board.PlacedPiece
	Pinned   board.PlacedPiece
	Target   board.PlacedPiece
	// Absolute is set when Target is a king.
	Absolute bool
}

// Skewer is a slider attack on a piece with a less valuable piece of the
// same side standing behind it.
type Skewer struct {
	Attacker board.PlacedPiece
	Front    board.PlacedPiece
	Behind   board.PlacedPiece
}

// singleEnemyBlocker returns the blocker and victim of a one-blocker x-ray
// where both belong to the side opposing the attacker.
func singleEnemyBlocker(a Attack) (blocker, victim board.PlacedPiece, ok bool) {
	if a.Victim == nil || len(a.Between) != 1 || !a.Attacker.Piece.Type().Slides() {
		return blocker, victim, false
	}
	them := a.Attacker.Piece.Color().Other()
	blocker, victim = a.Between[0], *a.Victim
	if blocker.Piece.Color() != them || victim.Piece.Color() != them {
		return blocker, victim, false
	}
	return blocker, victim, true
}

// Pins extracts the pins present in a set of attack records, typically the
// output of AllAttacksAndPins.
func Pins(attacks []Attack) []Pin {
	var pins []Pin
	for _, a := range attacks {
		pinned, target, ok := singleEnemyBlocker(a)
		if !ok || PieceValue[pinned.Piece.Type()] >= PieceValue[target.Piece.Type()] {
			continue
		}
		pins = append(pins, Pin{
			Attacker: a.Attacker,
			Pinned:   pinned,
			Target:   target,
			Absolute: target.Piece.Type() == board.King,
		})
	}
	return pins
}

// Skewers extracts the skewers present in a set of attack records.
func Skewers(attacks []Attack) []Skewer {
	var skewers []Skewer
	for _, a := range attacks {
		front, behind, ok := singleEnemyBlocker(a)
		if !ok || PieceValue[front.Piece.Type()] <= PieceValue[behind.Piece.Type()] {
			continue
		}
		skewers = append(skewers, Skewer{Attacker: a.Attacker, Front: front, Behind: behind})
	}
	return skewers
}

// PinnedPieces returns the pieces of color c pinned against their own king.
func PinnedPieces(s board.Snapshot, c board.Color) []board.PlacedPiece {
	var out []board.PlacedPiece
	for _, p := range Pins(AllAttacksAndPins(s)) {
		if p.Absolute && p.Pinned.Piece.Color() == c {
			out = append(out, p.Pinned)
		}
	}
	return out
}
