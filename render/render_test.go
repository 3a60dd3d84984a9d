package render

import (
	"bytes"
	"strings"
	"testing"

	"chess-attacks/board"
)

func TestAttackMap(t *testing.T) {
	b := board.MustParseFEN("4k3/4r3/8/8/8/8/4P3/4K3 w - - 0 1")
	var buf bytes.Buffer
	if err := AttackMap(&buf, b, Options{SquareSize: 40, ShowPins: true}); err != nil {
		t.Fatalf("AttackMap: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if got := strings.Count(out, "♙"); got != 1 {
		t.Fatalf("expected one white pawn glyph, got %d", got)
	}
	if !strings.Contains(out, "stroke-dasharray") {
		t.Fatalf("pin line missing")
	}
	if !strings.Contains(out, `width="320"`) {
		t.Fatalf("unexpected canvas size")
	}
}

func TestAttackMapWithoutPins(t *testing.T) {
	var buf bytes.Buffer
	if err := AttackMap(&buf, board.StartingPosition(), Options{Flipped: true}); err != nil {
		t.Fatalf("AttackMap: %v", err)
	}
	if strings.Contains(buf.String(), "stroke-dasharray") {
		t.Fatalf("pins drawn without ShowPins")
	}
}

func TestHeat(t *testing.T) {
	if heat(0, 0) != "" {
		t.Fatalf("unattacked squares must not be tinted")
	}
	if got := heat(2, 0); !strings.Contains(got, "#d32f2f") || !strings.Contains(got, "0.30") {
		t.Fatalf("heat(2,0) = %q", got)
	}
	if got := heat(1, 1); !strings.Contains(got, "#7b1fa2") {
		t.Fatalf("heat(1,1) = %q", got)
	}
	if got := heat(9, 0); !strings.Contains(got, "0.60") {
		t.Fatalf("opacity should cap, got %q", got)
	}
}
