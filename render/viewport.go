package render

import (
	"math"

	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/entity"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/parameter"
	"github.com/ricardo-emanuel01/space-invaders-2nd-iteration/physics"
)

// Rows reserved below the playfield
const statusRows = 1

// Viewport maps logical screen coordinates onto terminal cells
type Viewport struct {
	Cols, Rows int // Whole terminal
	scaleX     float64
	scaleY     float64
}

// NewViewport fits the logical screen into cols x rows, keeping the status rows free
func NewViewport(cols, rows int) Viewport {
	v := Viewport{Cols: max(cols, 1), Rows: max(rows, statusRows+1)}
	v.scaleX = float64(v.Cols) / parameter.ScreenWidth
	v.scaleY = float64(v.FieldRows()) / parameter.ScreenHeight
	return v
}

// FieldRows is the playfield height in cells
func (v Viewport) FieldRows() int {
	return v.Rows - statusRows
}

// Column maps a logical x to a cell column
func (v Viewport) Column(x float64) int {
	return int(physics.Clamp(math.Floor(x*v.scaleX), 0, float64(v.Cols-1)))
}

// Row maps a logical y to a playfield row
func (v Viewport) Row(y float64) int {
	return int(physics.Clamp(math.Floor(y*v.scaleY), 0, float64(v.FieldRows()-1)))
}

// Cells returns the inclusive cell rectangle covered by b, at least one cell
// ok is false when b lies entirely off the logical screen
func (v Viewport) Cells(b entity.Box) (x0, y0, x1, y1 int, ok bool) {
	if b.Right() <= 0 || b.X >= parameter.ScreenWidth || b.Bottom() <= 0 || b.Y >= parameter.ScreenHeight {
		return 0, 0, 0, 0, false
	}

	x0, y0 = v.Column(b.X), v.Row(b.Y)
	x1 = max(int(physics.Clamp(math.Ceil(b.Right()*v.scaleX)-1, 0, float64(v.Cols-1))), x0)
	y1 = max(int(physics.Clamp(math.Ceil(b.Bottom()*v.scaleY)-1, 0, float64(v.FieldRows()-1))), y0)
	return x0, y0, x1, y1, true
}
