package gridpath

import (
	"math"
	"testing"
)

const testCellSize = 40.0

// checkContiguous проверяет, что соседние точки пути отстоят ровно на одну клетку по одной оси.
func checkContiguous(t *testing.T, p *Path) {
	t.Helper()
	for i := 1; i < p.Len(); i++ {
		prev, cur := p.At(i-1), p.At(i)
		dx, dy := cur.X-prev.X, cur.Y-prev.Y
		if dx != 0 && dy != 0 {
			t.Fatalf("points %d -> %d move diagonally (%v, %v)", i-1, i, dx, dy)
		}
		if step := math.Abs(dx) + math.Abs(dy); step != testCellSize {
			t.Fatalf("points %d -> %d: got step %v, want %v", i-1, i, step, testCellSize)
		}
		var want Direction
		switch {
		case dx > 0:
			want = Right
		case dx < 0:
			want = Left
		case dy > 0:
			want = Down
		default:
			want = Up
		}
		if cur.Direction != want {
			t.Errorf("point %d: got direction %q, want %q", i, cur.Direction, want)
		}
	}
}

func TestBuildInterpolatesAndDedupes(t *testing.T) {
	p := Build(Pattern{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 3}}, testCellSize)

	// 4 клетки по X и ещё 2 по Y, стык не дублируется
	if p.Len() != 6 {
		t.Fatalf("got %d points, want 6", p.Len())
	}
	checkContiguous(t, p)

	sx, sy := Cell{X: 1, Y: 1}.Center(testCellSize)
	if start := p.Start(); start.X != sx || start.Y != sy {
		t.Errorf("got start (%v, %v), want (%v, %v)", start.X, start.Y, sx, sy)
	}
	ex, ey := Cell{X: 4, Y: 3}.Center(testCellSize)
	if end := p.End(); end.X != ex || end.Y != ey {
		t.Errorf("got end (%v, %v), want (%v, %v)", end.X, end.Y, ex, ey)
	}
	if p.LastIndex() != p.Len()-1 {
		t.Errorf("got last index %d, want %d", p.LastIndex(), p.Len()-1)
	}
}

func TestBuildReversedSegments(t *testing.T) {
	p := Build(Pattern{{X: 5, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 2}}, testCellSize)
	checkContiguous(t, p)
	if p.At(1).Direction != Left {
		t.Errorf("got %q on the first segment, want %q", p.At(1).Direction, Left)
	}
	if p.End().Direction != Up {
		t.Errorf("got %q on the last segment, want %q", p.End().Direction, Up)
	}
}

func TestPathContains(t *testing.T) {
	p := Build(Pattern{{X: 0, Y: 0}, {X: 3, Y: 0}}, testCellSize)
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{X: 0, Y: 0}, true},
		{Cell{X: 2, Y: 0}, true},
		{Cell{X: 3, Y: 0}, true},
		{Cell{X: 4, Y: 0}, false},
		{Cell{X: 1, Y: 1}, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.cell); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	p := Build(Pattern{{X: 0, Y: 0}, {X: 2, Y: 0}}, testCellSize)
	pts := p.Points()
	pts[0].X = -100
	if p.Start().X == -100 {
		t.Error("mutating Points() changed the path")
	}
}

func TestPatternValidate(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		wantErr bool
	}{
		{"ok", Pattern{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}, false},
		{"single anchor", Pattern{{X: 0, Y: 0}}, true},
		{"diagonal", Pattern{{X: 0, Y: 0}, {X: 3, Y: 3}}, true},
		{"out of bounds", Pattern{{X: 0, Y: 0}, {X: 10, Y: 0}}, true},
		{"repeated anchor", Pattern{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 4}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate(10, 10)
			if (err != nil) != tt.wantErr {
				t.Errorf("got error %v, want error: %v", err, tt.wantErr)
			}
		})
	}
}

type fixedIntner int

func (f fixedIntner) Intn(n int) int { return int(f) % n }

func TestGeneratePicksPattern(t *testing.T) {
	patterns := []Pattern{
		{{X: 0, Y: 0}, {X: 2, Y: 0}},
		{{X: 0, Y: 1}, {X: 0, Y: 4}},
	}
	p, idx := Generate(patterns, fixedIntner(1), testCellSize)
	if idx != 1 {
		t.Fatalf("got pattern %d, want 1", idx)
	}
	if p.Len() != 4 {
		t.Errorf("got %d points, want 4", p.Len())
	}
	if p.CellSize() != testCellSize {
		t.Errorf("got cell size %v, want %v", p.CellSize(), testCellSize)
	}
}

func TestPixelToCell(t *testing.T) {
	tests := []struct {
		x, y float64
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{39.9, 39.9, Cell{0, 0}},
		{40, 80, Cell{1, 2}},
		{-1, 5, Cell{-1, 0}},
	}
	for _, tt := range tests {
		if got := PixelToCell(tt.x, tt.y, testCellSize); got != tt.want {
			t.Errorf("PixelToCell(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
