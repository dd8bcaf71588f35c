package gamemath

// ClipSegment clips the segment (x1, y1)-(x2, y2) against an axis-aligned
// rectangle using Liang-Barsky. It returns the clipped endpoints and
// whether any part of the segment lies inside the rectangle, edges
// included.
func ClipSegment(x1, y1, x2, y2, rx, ry, rw, rh float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 - rx, rx + rw - x1, y1 - ry, ry + rh - y1}

	for i := range p {
		if p[i] == 0 {
			// parallel to this edge and outside it
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// SegmentHitsRect reports whether any point of the segment lies inside
// the rectangle.
func SegmentHitsRect(x1, y1, x2, y2, rx, ry, rw, rh float64) bool {
	_, _, _, _, ok := ClipSegment(x1, y1, x2, y2, rx, ry, rw, rh)
	return ok
}
