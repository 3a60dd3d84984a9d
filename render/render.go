// Package render draws attack maps of a position as SVG diagrams.
package render

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-attacks/attack"
	"chess-attacks/board"
)

// Options controls the diagram layout.
type Options struct {
	// SquareSize is the edge of one square in pixels. Defaults to 48.
	SquareSize int
	// Flipped draws the board from Black's side.
	Flipped bool
	// ShowPins draws a dashed line from each pinning piece to the piece it pins.
	ShowPins bool
}

const defaultSquareSize = 48

var glyphs = map[board.Piece]string{
	board.WhiteKing: "♔", board.WhiteQueen: "♕", board.WhiteRook: "♖",
	board.WhiteBishop: "♗", board.WhiteKnight: "♘", board.WhitePawn: "♙",
	board.BlackKing: "♚", board.BlackQueen: "♛", board.BlackRook: "♜",
	board.BlackBishop: "♝", board.BlackKnight: "♞", board.BlackPawn: "♟",
}

// AttackMap writes an SVG diagram of s. Each square is tinted by how many
// direct attackers each side has on it: red for White, blue for Black,
// purple where both sides meet.
func AttackMap(w io.Writer, s board.Snapshot, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = defaultSquareSize
	}

	attacks := attack.AllAttacksAndPins(s)
	var counts [2][board.NumSquares]int
	for _, a := range attacks {
		if a.Direct() && a.Attacker.Square != a.Target {
			counts[a.Attacker.Piece.Color()][a.Target]++
		}
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(8*size, 8*size)
	canvas.Title("attack map")

	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		x, y := origin(sq, size, opts.Flipped)
		fill := "#f0d9b5"
		if (sq.File()+sq.Rank())%2 == 0 {
			fill = "#b58863"
		}
		canvas.Rect(x, y, size, size, "fill:"+fill)
		if tint := heat(counts[board.White][sq], counts[board.Black][sq]); tint != "" {
			canvas.Rect(x, y, size, size, tint)
		}
		if g, ok := glyphs[s.PieceAt(sq)]; ok {
			canvas.Text(x+size/2, y+size*3/4, g,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", size*3/4))
		}
	}

	if opts.ShowPins {
		for _, p := range attack.Pins(attacks) {
			x1, y1 := center(p.Attacker.Square, size, opts.Flipped)
			x2, y2 := center(p.Pinned.Square, size, opts.Flipped)
			canvas.Line(x1, y1, x2, y2, "stroke:#2e7d32;stroke-width:3;stroke-dasharray:6,4")
		}
	}

	canvas.End()
	return bw.Flush()
}

func origin(sq board.Square, size int, flipped bool) (int, int) {
	file, rank := sq.File(), 7-sq.Rank()
	if flipped {
		file, rank = 7-file, sq.Rank()
	}
	return file * size, rank * size
}

func center(sq board.Square, size int, flipped bool) (int, int) {
	x, y := origin(sq, size, flipped)
	return x + size/2, y + size/2
}

// heat returns the overlay style for a square, or "" when nobody attacks it.
func heat(white, black int) string {
	if white == 0 && black == 0 {
		return ""
	}
	opacity := 0.15 * float64(white+black)
	if opacity > 0.6 {
		opacity = 0.6
	}
	color := "#d32f2f"
	switch {
	case white > 0 && black > 0:
		color = "#7b1fa2"
	case black > 0:
		color = "#1976d2"
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f", color, opacity)
}
