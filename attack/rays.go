package attack

import "chess-attacks/board"

// Direction names the compass line a ray follows. Knight targets use Jump.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
	Jump
)

var directionNames = [...]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW", "jump"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "?"
}

// step is the (file, rank) delta of one square along each compass direction.
var step = [8][2]int{
	North:     {0, 1},
	South:     {0, -1},
	East:      {1, 0},
	West:      {-1, 0},
	NorthEast: {1, 1},
	NorthWest: {-1, 1},
	SouthEast: {1, -1},
	SouthWest: {-1, -1},
}

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var (
	rookDirections   = []Direction{North, South, East, West}
	bishopDirections = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
	queenDirections  = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
)

// pawnDirections holds the two capture diagonals for each side. Pushes are
// moves, not attacks, and never appear here.
var pawnDirections = [2][]Direction{
	board.White: {NorthWest, NorthEast},
	board.Black: {SouthWest, SouthEast},
}

// geometry describes how a piece type reaches squares: the directions it
// follows and whether it keeps going past the first square.
type geometry struct {
	directions []Direction
	slides     bool
}

var geometries = [board.King + 1]geometry{
	board.Bishop: {directions: bishopDirections, slides: true},
	board.Rook:   {directions: rookDirections, slides: true},
	board.Queen:  {directions: queenDirections, slides: true},
	board.King:   {directions: queenDirections},
}

// Ray is the ordered list of squares a piece reaches in one direction,
// walking outward from its square up to the board edge.
type Ray struct {
	Dir     Direction
	Squares []board.Square
}

// compassRays[sq][d] is the full ray from sq in direction d, origin excluded.
var compassRays [board.NumSquares][8][]board.Square

// rayTable[piece][sq] caches the rays of every piece code on every square.
var rayTable [16][board.NumSquares][]Ray

func init() {
	initCompassRays()
	initRayTable()
}

// initCompassRays precomputes the eight directional rays from each square.
func initCompassRays() {
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		for d := North; d <= SouthWest; d++ {
			var ray []board.Square
			cur := sq
			for {
				next, ok := cur.Offset(step[d][0], step[d][1])
				if !ok {
					break
				}
				ray = append(ray, next)
				cur = next
			}
			compassRays[sq][d] = ray
		}
	}
}

// initRayTable expands the per-type geometry into rays for each piece code.
func initRayTable() {
	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			p := board.NewPiece(c, pt)
			for sq := board.Square(0); sq < board.NumSquares; sq++ {
				rayTable[p][sq] = walk(pt, c, sq)
			}
		}
	}
}

// walk builds the rays of one piece type on one square. Off-board targets
// are dropped.
func walk(pt board.PieceType, c board.Color, sq board.Square) []Ray {
	var rays []Ray
	switch pt {
	case board.Knight:
		for _, off := range knightOffsets {
			if to, ok := sq.Offset(off[0], off[1]); ok {
				rays = append(rays, Ray{Dir: Jump, Squares: []board.Square{to}})
			}
		}
		return rays
	case board.Pawn:
		return stepRays(sq, pawnDirections[c], false)
	}
	g := geometries[pt]
	return stepRays(sq, g.directions, g.slides)
}

func stepRays(sq board.Square, dirs []Direction, slides bool) []Ray {
	var rays []Ray
	for _, d := range dirs {
		squares := compassRays[sq][d]
		if len(squares) == 0 {
			continue
		}
		if !slides {
			squares = squares[:1:1]
		}
		rays = append(rays, Ray{Dir: d, Squares: squares})
	}
	return rays
}

// Rays returns the rays walked by p, one per direction for sliders and one
// single-square ray per target for knights, kings and pawns. The result is
// shared and must not be modified.
func Rays(p board.PlacedPiece) []Ray {
	if !p.Square.Valid() || int(p.Piece) >= len(rayTable) ||
		p.Piece.Type() == board.NoPieceType || p.Piece.Type() > board.King {
		return nil
	}
	return rayTable[p.Piece][p.Square]
}
