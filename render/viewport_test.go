package render

import (
	"testing"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
)

func TestViewportCells(t *testing.T) {
	// 0.05 columns and 0.025 rows per unit
	vp := NewViewport(96, 28)

	tests := []struct {
		name           string
		box            entity.Box
		x0, y0, x1, y1 int
		ok             bool
	}{
		{"ship", entity.Box{X: 912, Y: 900, Width: 96, Height: 72}, 45, 22, 50, 24, true},
		{"cell aligned", entity.Box{X: 0, Y: 0, Width: 100, Height: 80}, 0, 0, 4, 1, true},
		{"bullet is one cell", entity.Box{X: 500, Y: 500, Width: 4, Height: 32}, 25, 12, 25, 13, true},
		{"right edge", entity.Box{X: 1856, Y: 50, Width: 64, Height: 40}, 92, 1, 95, 2, true},
		{"parked past edge", entity.Box{X: 1920, Y: 50, Width: 64, Height: 40}, 0, 0, 0, 0, false},
		{"above top", entity.Box{X: 500, Y: -40, Width: 4, Height: 32}, 0, 0, 0, 0, false},
		{"straddles top", entity.Box{X: 500, Y: -16, Width: 4, Height: 32}, 25, 0, 25, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := vp.Cells(tt.box)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("got (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)", x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestViewportTinyTerminal(t *testing.T) {
	vp := NewViewport(0, 0)
	if vp.Cols < 1 || vp.FieldRows() < 1 {
		t.Fatalf("Expected at least one playfield cell, got %dx%d", vp.Cols, vp.FieldRows())
	}
	if c := vp.Column(5000); c != vp.Cols-1 {
		t.Errorf("Expected clamp to last column, got %d", c)
	}
}
