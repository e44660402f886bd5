package grid

import (
	"image"
	"math"
)

// DefaultPieces is the tile count used when none is given.
const DefaultPieces = 144

// Layout splits an image into Pieces tiles laid out row-major on a
// Columns x Rows grid. The last row may be partially filled.
type Layout struct {
	Pieces  int
	Columns int
	Rows    int
}

// NewLayout uses ceil(sqrt(pieces)) columns and as many rows as needed.
func NewLayout(pieces int) Layout {
	if pieces <= 0 {
		pieces = DefaultPieces
	}
	cols := int(math.Ceil(math.Sqrt(float64(pieces))))
	rows := int(math.Ceil(float64(pieces) / float64(cols)))
	return Layout{Pieces: pieces, Columns: cols, Rows: rows}
}

// Cell returns the column and row of a tile index.
func (l Layout) Cell(index int) (col, row int) {
	return index % l.Columns, index / l.Columns
}

// CellAt maps a point inside a width x height surface to a tile index.
func (l Layout) CellAt(x, y, width, height float64) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	col := int(math.Floor(x / width * float64(l.Columns)))
	row := int(math.Floor(y / height * float64(l.Rows)))
	if col < 0 || col >= l.Columns || row < 0 || row >= l.Rows {
		return 0, false
	}
	index := row*l.Columns + col
	if index >= l.Pieces {
		return 0, false
	}
	return index, true
}

// Neighborhood lists the 3x3 block of tiles centred on index, clipped to the
// grid, in row-major order.
func (l Layout) Neighborhood(index int) []int {
	if index < 0 || index >= l.Pieces {
		return nil
	}
	col, row := l.Cell(index)

	var out []int
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if r < 0 || r >= l.Rows || c < 0 || c >= l.Columns {
				continue
			}
			if n := r*l.Columns + c; n < l.Pieces {
				out = append(out, n)
			}
		}
	}
	return out
}

// BackgroundPosition returns the CSS background-position percentages that
// show tile index of an image sized Columns x Rows times the tile.
func (l Layout) BackgroundPosition(index int) (x, y float64) {
	col, row := l.Cell(index)
	return percent(col, l.Columns), percent(row, l.Rows)
}

func percent(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) * 100 / float64(n-1)
}

// Tile returns the part of bounds covered by tile index. Edges are distributed
// so that the tiles cover bounds exactly.
func (l Layout) Tile(index int, bounds image.Rectangle) image.Rectangle {
	col, row := l.Cell(index)
	w, h := bounds.Dx(), bounds.Dy()

	x0 := bounds.Min.X + col*w/l.Columns
	x1 := bounds.Min.X + (col+1)*w/l.Columns
	y0 := bounds.Min.Y + row*h/l.Rows
	y1 := bounds.Min.Y + (row+1)*h/l.Rows
	return image.Rect(x0, y0, x1, y1)
}
