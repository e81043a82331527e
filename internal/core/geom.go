package core

// Rect is an axis-aligned rectangle in arena units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// ClosestPoint returns the point on (or inside) the rectangle closest to p,
// clamping each axis independently into the rectangle's span.
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// CircleOverlapsRect reports whether a circle at center with the given radius
// overlaps the rectangle. The test computes the closest point on the
// rectangle to the circle's center and compares squared distances, so no
// square root is taken.
func CircleOverlapsRect(center Vec2, radius float64, r Rect) bool {
	closest := r.ClosestPoint(center)
	d := center.Sub(closest)
	return d.Dot(d) < radius*radius
}

// CollisionNormal returns the unit vector from the rectangle's closest point
// toward the circle center. When the center lies exactly on the rectangle the
// offset has zero magnitude and no normal is defined; straight up is returned
// so callers never divide by zero.
func CollisionNormal(center Vec2, r Rect) Vec2 {
	d := center.Sub(r.ClosestPoint(center))
	if d.X == 0 && d.Y == 0 {
		return Vec2{0, -1}
	}
	return d.Normalized()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
