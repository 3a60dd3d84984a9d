package bench

import (
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"chess-attacks/adapt"
	"chess-attacks/attack"
	"chess-attacks/board"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func benchEnumerate(b *testing.B, fen string) {
	snap, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = attack.AllAttacksAndPins(snap)
	}
}

func BenchmarkAllAttacksAndPins_Initial(b *testing.B) {
	benchEnumerate(b, board.FENStartPos)
}

func BenchmarkAllAttacksAndPins_Kiwipete(b *testing.B) {
	benchEnumerate(b, kiwipete)
}

func BenchmarkAllAttacksAndPins_Pos6(b *testing.B) {
	benchEnumerate(b, pos6)
}

func BenchmarkIsAttacked_AllSquares_Kiwipete(b *testing.B) {
	snap, err := board.ParseFEN(kiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := board.Square(0); sq < board.NumSquares; sq++ {
			_ = attack.IsAttacked(snap, sq, board.White)
		}
	}
}

func BenchmarkAttackersTo_Kiwipete(b *testing.B) {
	snap, err := board.ParseFEN(kiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	e5 := board.MustSquare("e5")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = attack.AttackersTo(snap, e5, board.Black)
	}
}

func BenchmarkPins_Pos6(b *testing.B) {
	snap, err := board.ParseFEN(pos6)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = attack.Pins(attack.AllAttacksAndPins(snap))
	}
}

// Reference points: the same square queries answered by the bitboard move
// generators the adapters read from.
func BenchmarkUnderDirectAttack_Dragontooth_Kiwipete(b *testing.B) {
	dt := dragontoothmg.ParseFen(kiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := uint8(0); sq < 64; sq++ {
			_ = dt.UnderDirectAttack(false, sq)
		}
	}
}

func BenchmarkIsSquareAttacked_Goose_Kiwipete(b *testing.B) {
	gb, err := goosemg.ParseFEN(kiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := goosemg.Square(0); sq < 64; sq++ {
			_ = gb.IsSquareAttacked(sq, goosemg.White)
		}
	}
}

func BenchmarkFromGoose_Kiwipete(b *testing.B) {
	gb, err := goosemg.ParseFEN(kiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adapt.FromGoose(gb)
	}
}
