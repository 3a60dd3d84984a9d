package attack

import "chess-attacks/board"

// Exchange runs a static exchange evaluation on sq: side captures the piece
// standing there, then both sides keep recapturing with their least valuable
// direct attacker. Attacks are recomputed after every capture so sliders
// hidden behind a departed piece join in. The result is side's material
// balance in PieceValue units under best play, where either side may stop
// recapturing. It is 0 when sq is empty, holds one of side's own pieces,
// or side has no attacker.
func Exchange(s board.Snapshot, sq board.Square, side board.Color) int {
	b := board.FromSnapshot(s)
	target := b.PieceAt(sq)
	if target == board.NoPiece || target.Color() == side {
		return 0
	}
	attacker, ok := leastValuableAttacker(b, sq, side)
	if !ok {
		return 0
	}

	gain := []int{PieceValue[target.Type()]}
	onSquare := attacker.Piece
	b = b.Without(attacker.Square).With(sq, attacker.Piece)
	side = side.Other()

	for {
		attacker, ok = leastValuableAttacker(b, sq, side)
		if !ok {
			break
		}
		gain = append(gain, PieceValue[onSquare.Type()]-gain[len(gain)-1])
		onSquare = attacker.Piece
		b = b.Without(attacker.Square).With(sq, attacker.Piece)
		side = side.Other()
	}

	for x := len(gain) - 1; x > 0; x-- {
		gain[x-1] = -max(-gain[x-1], gain[x])
	}
	return gain[0]
}

func leastValuableAttacker(b *board.Board, sq board.Square, side board.Color) (board.PlacedPiece, bool) {
	var best board.PlacedPiece
	found := false
	for _, p := range AttackersTo(b, sq, side) {
		if !found || PieceValue[p.Piece.Type()] < PieceValue[best.Piece.Type()] {
			best, found = p, true
		}
	}
	return best, found
}
