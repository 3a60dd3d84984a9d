package board

import (
	"errors"
	"strings"
)

// Square represents a board position (0-63), a1 = 0 and h8 = 63.
type Square int8

const NoSquare Square = -1

// NumSquares is the number of squares on the board.
const NumSquares = 64

// NewSquare builds a square from a file and rank in [0, 8).
// Out-of-range coordinates give NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index, 0 for the first rank.
func (sq Square) Rank() int { return int(sq) / 8 }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < NumSquares }

// Offset shifts sq by df files and dr ranks. ok is false when the result
// falls off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	to := NewSquare(sq.File()+df, sq.Rank()+dr)
	return to, to != NoSquare
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation ("e4") into a Square.
func ParseSquare(alg string) (Square, error) {
	alg = strings.ToLower(strings.TrimSpace(alg))
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return Square(int(file-'a') + int(rank-'1')*8), nil
}

// MustSquare is ParseSquare that panics on invalid input.
func MustSquare(alg string) Square {
	sq, err := ParseSquare(alg)
	if err != nil {
		panic(err)
	}
	return sq
}
