package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{
			name:  "interior point",
			point: Point{X: 25, Y: 40},
			want:  true,
		},
		{
			name:  "top-left corner is inside",
			point: Point{X: 10, Y: 20},
			want:  true,
		},
		{
			name:  "right edge is outside",
			point: Point{X: 40, Y: 40},
			want:  false,
		},
		{
			name:  "bottom edge is outside",
			point: Point{X: 25, Y: 60},
			want:  false,
		},
		{
			name:  "left of rect",
			point: Point{X: 9, Y: 40},
			want:  false,
		},
		{
			name:  "above rect",
			point: Point{X: 25, Y: 19},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if got := r.Right(); got != 40 {
		t.Errorf("Right() = %v, want 40", got)
	}
	if got := r.Bottom(); got != 60 {
		t.Errorf("Bottom() = %v, want 60", got)
	}
	if got := r.CenterX(); got != 25 {
		t.Errorf("CenterX() = %v, want 25", got)
	}
	if got := r.CenterY(); got != 40 {
		t.Errorf("CenterY() = %v, want 40", got)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	moved := r.Translate(5, -10)

	want := Rect{X: 15, Y: 10, W: 30, H: 40}
	if moved != want {
		t.Errorf("Translate(5, -10) = %+v, want %+v", moved, want)
	}
	if r.X != 10 || r.Y != 20 {
		t.Errorf("Translate mutated receiver: %+v", r)
	}
}

func TestZeroRectContainsNothing(t *testing.T) {
	var r Rect
	if r.Contains(Point{}) {
		t.Error("zero rect should not contain the origin")
	}
}
