package gamemath

import "math"

// Center returns the center of a size x size square whose top-left is (x, y).
func Center(x, y, size float64) (cx, cy float64) {
	return x + size/2, y + size/2
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle returns the heading from (x1, y1) to (x2, y2) in radians.
// Coincident points yield 0, which points right.
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Unit returns the unit vector for an angle.
func Unit(angle float64) (x, y float64) {
	return math.Cos(angle), math.Sin(angle)
}

// Normalize scales (x, y) to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToArena keeps a size x size square fully inside a width x height
// arena anchored at the origin.
func ClampToArena(x, y, size, width, height float64) (float64, float64) {
	return Clamp(x, 0, width-size), Clamp(y, 0, height-size)
}

// OutOfArena reports whether a square at (x, y) touches or crosses the
// arena edge on either axis.
func OutOfArena(x, y, size, width, height float64) bool {
	return x <= 0 || x >= width-size || y <= 0 || y >= height-size
}

// RectsOverlap reports whether two axis-aligned rectangles overlap with
// a non-zero area.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// HorizontalDominant reports whether a movement vector should be read as
// horizontal. Ties favor horizontal. The second result is false for the
// zero vector.
func HorizontalDominant(dx, dy float64) (horizontal, ok bool) {
	if dx == 0 && dy == 0 {
		return false, false
	}
	return math.Abs(dx) >= math.Abs(dy), true
}
