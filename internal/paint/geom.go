package paint

// SegmentTouchesRect reports whether any part of the segment a→b lies inside r
// (Liang–Barsky clipping).
func SegmentTouchesRect(a, b Point, r Rect) bool {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	return clip(-dx, a.X-r.X) &&
		clip(dx, r.X+r.Width-a.X) &&
		clip(-dy, a.Y-r.Y) &&
		clip(dy, r.Y+r.Height-a.Y)
}
