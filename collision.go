package main

// Entities are axis-aligned boxes centered on their position. Rotation
// is ignored for hit tests; the box is the whole hitbox.

// RectsOverlap checks if two center-based axis-aligned rects overlap
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	return dx <= (w1+w2)/2 && dy <= (h1+h2)/2
}

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// PointInRect checks if a point lies inside a center-based rect
func PointInRect(px, py, cx, cy, w, h float64) bool {
	dx := px - cx
	if dx < 0 {
		dx = -dx
	}
	dy := py - cy
	if dy < 0 {
		dy = -dy
	}
	return dx <= w/2 && dy <= h/2
}

// ProjectileHitsTarget checks a projectile's box against the target's
func ProjectileHitsTarget(p *Projectile, t *Target) bool {
	return RectsOverlap(p.X, p.Y, p.W, p.H, t.X, t.Y, t.W, t.H)
}

// PlaneHitsTarget checks a plane's box against the target's
func PlaneHitsTarget(p *Plane, t *Target) bool {
	return RectsOverlap(p.X, p.Y, p.W, p.H, t.X, t.Y, t.W, t.H)
}
