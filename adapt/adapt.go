// Package adapt turns board representations from other chess libraries into
// board snapshots the attack engine can read.
//
// Every adapter copies placement only; side to move, castling and clocks
// stay with the source library.
package adapt

import (
	"math/bits"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"chess-attacks/board"
)

// FromDragontooth copies the placement of a dragontoothmg board.
func FromDragontooth(b *dragontoothmg.Board) *board.Board {
	m := make(map[board.Square]board.Piece, bits.OnesCount64(b.White.All|b.Black.All))
	addBitboards(m, board.White, &b.White)
	addBitboards(m, board.Black, &b.Black)
	return board.NewBoard(m)
}

func addBitboards(m map[board.Square]board.Piece, c board.Color, bbs *dragontoothmg.Bitboards) {
	sets := [...]struct {
		mask uint64
		pt   board.PieceType
	}{
		{bbs.Pawns, board.Pawn},
		{bbs.Knights, board.Knight},
		{bbs.Bishops, board.Bishop},
		{bbs.Rooks, board.Rook},
		{bbs.Queens, board.Queen},
		{bbs.Kings, board.King},
	}
	for _, set := range sets {
		for mask := set.mask; mask != 0; mask &= mask - 1 {
			m[board.Square(bits.TrailingZeros64(mask))] = board.NewPiece(c, set.pt)
		}
	}
}

// FromGoose copies the placement of a goosemg board.
func FromGoose(b *goosemg.Board) *board.Board {
	m := make(map[board.Square]board.Piece)
	for sq := 0; sq < board.NumSquares; sq++ {
		p := b.PieceAt(goosemg.Square(sq))
		if p == goosemg.NoPiece {
			continue
		}
		c := board.White
		if p.Color() == goosemg.Black {
			c = board.Black
		}
		// goosemg numbers its types pawn=1 .. king=6, as board does.
		m[board.Square(sq)] = board.NewPiece(c, board.PieceType(p.Type()))
	}
	return board.NewBoard(m)
}

// FromNotnil copies the placement of a notnil/chess position.
func FromNotnil(pos *chess.Position) *board.Board {
	m := make(map[board.Square]board.Piece)
	for sq, p := range pos.Board().SquareMap() {
		pt := notnilTypes[p.Type()]
		if pt == board.NoPieceType {
			continue
		}
		c := board.White
		if p.Color() == chess.Black {
			c = board.Black
		}
		m[board.Square(sq)] = board.NewPiece(c, pt)
	}
	return board.NewBoard(m)
}

var notnilTypes = map[chess.PieceType]board.PieceType{
	chess.Pawn:   board.Pawn,
	chess.Knight: board.Knight,
	chess.Bishop: board.Bishop,
	chess.Rook:   board.Rook,
	chess.Queen:  board.Queen,
	chess.King:   board.King,
}
