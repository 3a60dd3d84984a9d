// Package attack computes which squares every piece of a position threatens,
// including x-ray lines through blocking pieces for pin and skewer detection.
//
// All functions are pure: they read a board.Snapshot and allocate fresh
// results, so they are safe for concurrent use as long as the snapshot is
// not mutated underneath them.
package attack

import (
	"strings"

	"golang.org/x/exp/slices"

	"chess-attacks/board"
)

// Attack records that Attacker reaches Target by its geometry.
//
// Victim is the occupant of Target, nil when the square is empty. Between
// lists the pieces crossed on the way, in order walking outward from the
// attacker; it is nil for a direct attack.
type Attack struct {
	Attacker board.PlacedPiece
	Target   board.Square
	Victim   *board.PlacedPiece
	Between  []board.PlacedPiece
}

// Direct reports whether the attacker has a clear line to Target.
func (a Attack) Direct() bool { return len(a.Between) == 0 }

// String renders the record as "Qd1xqd8 [Pd2 pd7]" or "Pa2-b3".
func (a Attack) String() string {
	var sb strings.Builder
	sb.WriteString(a.Attacker.String())
	if a.Victim != nil {
		sb.WriteByte('x')
		sb.WriteString(a.Victim.String())
	} else {
		sb.WriteByte('-')
		sb.WriteString(a.Target.String())
	}
	if len(a.Between) > 0 {
		sb.WriteString(" [")
		for i, pp := range a.Between {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(pp.String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// AttacksFrom returns the attack records of a single piece.
//
// With xray set, each ray is followed to the board edge and every occupant
// met along the way yields a record whose Between holds the pieces already
// passed. Without it, the walk in a direction ends at the first occupant.
// Empty squares only yield a record while the line is still clear.
func AttacksFrom(s board.Snapshot, p board.PlacedPiece, xray bool) []Attack {
	return appendAttacks(nil, s, p, xray)
}

func appendAttacks(dst []Attack, s board.Snapshot, attacker board.PlacedPiece, xray bool) []Attack {
	for _, ray := range Rays(attacker) {
		var between []board.PlacedPiece
		for _, sq := range ray.Squares {
			occ := s.PieceAt(sq)
			if occ == board.NoPiece {
				if len(between) == 0 {
					dst = append(dst, Attack{Attacker: attacker, Target: sq})
				}
				continue
			}
			victim := board.PlacedPiece{Piece: occ, Square: sq}
			dst = append(dst, Attack{
				Attacker: attacker,
				Target:   sq,
				Victim:   &victim,
				Between:  slices.Clone(between),
			})
			if !xray {
				break
			}
			between = append(between, victim)
		}
	}
	return dst
}

// AllAttacksAndPins enumerates the attack records of every piece on the
// board, both colors, x-ray lines included. No filtering by side or
// legality is applied; a pinned piece attacks exactly as if it were free.
func AllAttacksAndPins(s board.Snapshot) []Attack {
	var out []Attack
	for _, p := range s.Pieces() {
		out = appendAttacks(out, s, p, true)
	}
	return out
}

// IsAttacked reports whether a piece of color c has a direct, unobstructed
// attack on sq. A piece never attacks its own square; the occupant of sq may
// belong to either side.
func IsAttacked(s board.Snapshot, sq board.Square, c board.Color) bool {
	for _, a := range AllAttacksAndPins(s) {
		if attacksDirectly(a, sq, c) {
			return true
		}
	}
	return false
}

func attacksDirectly(a Attack, sq board.Square, c board.Color) bool {
	return a.Attacker.Piece.Color() == c &&
		a.Target == sq &&
		a.Direct() &&
		a.Attacker.Square != sq
}

// AttackersTo returns the pieces of color c attacking sq directly, in square
// order.
func AttackersTo(s board.Snapshot, sq board.Square, c board.Color) []board.PlacedPiece {
	var out []board.PlacedPiece
	for _, p := range s.Pieces() {
		if p.Piece.Color() != c || p.Square == sq {
			continue
		}
		for _, a := range AttacksFrom(s, p, false) {
			if attacksDirectly(a, sq, c) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Checkers returns the enemy pieces giving check to the king of color c.
// A missing king is never in check.
func Checkers(s board.Snapshot, c board.Color) []board.PlacedPiece {
	king := board.NewPiece(c, board.King)
	for _, p := range s.Pieces() {
		if p.Piece == king {
			return AttackersTo(s, p.Square, c.Other())
		}
	}
	return nil
}
