package grid

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		pieces     int
		cols, rows int
	}{
		{144, 12, 12},
		{121, 11, 11},
		{10, 4, 3},
		{1, 1, 1},
		{0, 12, 12},
	}

	for _, tt := range tests {
		l := NewLayout(tt.pieces)
		if l.Columns != tt.cols || l.Rows != tt.rows {
			t.Errorf("NewLayout(%d): expected %dx%d, got %dx%d", tt.pieces, tt.cols, tt.rows, l.Columns, l.Rows)
		}
	}
}

func TestCellAt(t *testing.T) {
	l := NewLayout(10) // 4 columns, 3 rows, last row has 2 tiles

	tests := []struct {
		x, y   float64
		want   int
		wantOK bool
	}{
		{0, 0, 0, true},
		{99, 0, 0, true},
		{100, 0, 1, true},
		{399, 150, 7, true},
		{150, 250, 9, true},
		{250, 250, 0, false}, // empty slot in the last row
		{-1, 10, 0, false},
		{400, 10, 0, false},
	}

	for _, tt := range tests {
		got, ok := l.CellAt(tt.x, tt.y, 400, 300)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CellAt(%v, %v) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNeighborhood(t *testing.T) {
	l := NewLayout(10)

	tests := []struct {
		index int
		want  []int
	}{
		{0, []int{0, 1, 4, 5}},
		{5, []int{0, 1, 2, 4, 5, 6, 8, 9}},
		{7, []int{2, 3, 6, 7}},
		{9, []int{4, 5, 6, 8, 9}},
		{10, nil},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, l.Neighborhood(tt.index)); diff != "" {
			t.Errorf("Neighborhood(%d) mismatch (-want +got):\n%s", tt.index, diff)
		}
	}
}

func TestBackgroundPositionAndTiles(t *testing.T) {
	l := NewLayout(9)

	x, y := l.BackgroundPosition(5)
	if x != 100 || y != 50 {
		t.Errorf("Expected tile 5 at 100%% 50%%, got %v%% %v%%", x, y)
	}

	bounds := image.Rect(10, 20, 310, 320)
	covered := 0
	for i := 0; i < l.Pieces; i++ {
		tile := l.Tile(i, bounds)
		if !tile.In(bounds) {
			t.Errorf("Tile %d %v outside %v", i, tile, bounds)
		}
		covered += tile.Dx() * tile.Dy()
	}
	if covered != bounds.Dx()*bounds.Dy() {
		t.Errorf("Tiles cover %d pixels, expected %d", covered, bounds.Dx()*bounds.Dy())
	}
	if got := l.Tile(4, bounds); got != image.Rect(110, 120, 210, 220) {
		t.Errorf("Center tile: got %v", got)
	}
}

func TestTriggers(t *testing.T) {
	tr := NewTriggers(NewLayout(9))

	added := tr.Touch(5, 5, 90, 90)
	if diff := cmp.Diff([]int{0, 1, 3, 4}, added); diff != "" {
		t.Errorf("First touch mismatch (-want +got):\n%s", diff)
	}

	added = tr.Touch(85, 85, 90, 90)
	if diff := cmp.Diff([]int{5, 7, 8}, added); diff != "" {
		t.Errorf("Second touch should only add new tiles (-want +got):\n%s", diff)
	}

	if tr.Touch(200, 5, 90, 90) != nil {
		t.Error("Touch outside the grid should do nothing")
	}

	if !tr.Triggered(4) || tr.Triggered(2) || tr.Triggered(6) {
		t.Errorf("Unexpected trigger set: %v", tr.Indexes())
	}
	if diff := cmp.Diff([]int{0, 1, 3, 4, 5, 7, 8}, tr.Indexes()); diff != "" {
		t.Errorf("Indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"hover", false},
		{"click", false},
		{"", false},
		{"drag", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			m, err := ParseMode(tt.variant)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.variant, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownMode) {
				t.Errorf("Expected ErrUnknownMode, got %v", err)
			}
			if !tt.wantErr && string(m) != tt.variant {
				t.Errorf("ParseMode(%q) = %q", tt.variant, m)
			}
		})
	}

	if !ModeHover.Accepts(ModeHover) || ModeHover.Accepts(ModeClick) || ModeNone.Accepts(ModeNone) {
		t.Error("Accepts mismatch")
	}
}
