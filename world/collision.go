package world

import "math"

// DefaultShrink keeps only the inner 60% of a sprite collidable.
const DefaultShrink = 0.6

// Body is anything with an axis-aligned bounding box.
type Body interface {
	Bounds() (x, y, w, h float64)
}

// Collides reports whether a and b overlap using DefaultShrink.
func Collides(a, b Body) bool {
	return CollidesShrunk(a, b, DefaultShrink)
}

// CollidesShrunk approximates both boxes by circles centred on the box with
// radius min(w, h)/2 scaled by shrink. Non-square boxes use their smaller
// side as the diameter.
func CollidesShrunk(a, b Body, shrink float64) bool {
	ax, ay, aw, ah := a.Bounds()
	bx, by, bw, bh := b.Bounds()

	dx := (ax + aw/2) - (bx + bw/2)
	dy := (ay + ah/2) - (by + bh/2)
	distance := math.Sqrt(dx*dx + dy*dy)

	ra := math.Min(aw, ah) / 2 * shrink
	rb := math.Min(bw, bh) / 2 * shrink

	return distance < ra+rb
}
