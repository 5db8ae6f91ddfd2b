// Package geom provides the 2-D primitives used for table layout and
// pointer hit-testing: points and axis-aligned rectangles.
//
// All coordinates are in user units (terminal cells in the TUI, but nothing
// in this package assumes a particular unit). The package has no dependency
// on any rendering framework so that game logic stays pure and testable.
package geom

// Point is a position in 2-D space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// The zero value is an empty rectangle at the origin.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64 // width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether p lies within the rectangle. Points on the left
// and top edges are inside; points on the right and bottom edges are not,
// so adjacent rectangles never claim the same point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns a copy of the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
