// Package board holds the position snapshot consumed by the attack engine.
package board

import (
	"math/bits"
	"strings"
)

// Snapshot is a read-only view of piece placement.
type Snapshot interface {
	// PieceAt returns the piece on sq, or NoPiece.
	PieceAt(sq Square) Piece
	// Pieces lists every occupied square in ascending square order.
	Pieces() []PlacedPiece
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Board is an immutable position. Methods that change placement return a
// new Board and leave the receiver untouched.
type Board struct {
	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [NumSquares]Piece

	// Occupancy bitboards for each side
	occupancy [2]uint64

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
	fullmoveNumber  int
}

// NewBoard returns a board initialized from a square-to-piece mapping.
// Invalid squares and NoPiece entries are skipped.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
	for sq, p := range m {
		if !sq.Valid() || p == NoPiece {
			continue
		}
		b.put(sq, p)
	}
	return b
}

// FromSnapshot copies any snapshot into a Board.
func FromSnapshot(s Snapshot) *Board {
	if b, ok := s.(*Board); ok {
		cp := *b
		return &cp
	}
	b := &Board{enPassantSquare: NoSquare, fullmoveNumber: 1}
	for _, pp := range s.Pieces() {
		if pp.Square.Valid() && pp.Piece != NoPiece {
			b.put(pp.Square, pp.Piece)
		}
	}
	return b
}

// StartingPosition returns the standard initial position.
func StartingPosition() *Board {
	return MustParseFEN(FENStartPos)
}

func (b *Board) put(sq Square, p Piece) {
	if old := b.pieces[sq]; old != NoPiece {
		b.occupancy[old.Color()] &^= bb(sq)
	}
	b.pieces[sq] = p
	if p != NoPiece {
		b.occupancy[p.Color()] |= bb(sq)
	}
}

// PieceAt returns the piece on a square. Off-board squares are empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.pieces[sq]
}

// Pieces returns every occupied square, a1 first.
func (b *Board) Pieces() []PlacedPiece {
	occ := b.AllOccupancy()
	out := make([]PlacedPiece, 0, bits.OnesCount64(occ))
	for occ != 0 {
		sq := Square(popLSB(&occ))
		out = append(out, PlacedPiece{Piece: b.pieces[sq], Square: sq})
	}
	return out
}

// With returns a copy of the board with p placed on sq, replacing any occupant.
func (b *Board) With(sq Square, p Piece) *Board {
	cp := *b
	if sq.Valid() {
		cp.put(sq, p)
	}
	return &cp
}

// Without returns a copy of the board with sq emptied.
func (b *Board) Without(sq Square) *Board { return b.With(sq, NoPiece) }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// KingSquare returns the square of c's king, or NoSquare when it is absent.
func (b *Board) KingSquare(c Color) Square {
	king := NewPiece(c, King)
	for sq, p := range b.pieces {
		if p == king {
			return Square(sq)
		}
	}
	return NoSquare
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the castling flags read from FEN.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassantSquare }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// Draw returns a visual representation of the board useful for debugging.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := 7; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteByte(' ')
		for f := 0; f < 8; f++ {
			p := b.pieces[NewSquare(f, r)]
			switch {
			case p != NoPiece:
				sb.WriteRune(charFromPiece(p))
			case (f+r)%2 == 0:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('1' + byte(r))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
