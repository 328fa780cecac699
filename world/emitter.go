package world

import "math"

// BurstSize is the number of projectiles in one volley.
const BurstSize = 3

// Spread returns the half-angle of a burst fired at the given score.
// It widens with score and is capped at t.MaxSpread.
func Spread(score int, t Tuning) float64 {
	return math.Min(t.MaxSpread, float64(score)/t.SpreadDivisor)
}

// FireBurst builds the three-way fan a vehicle shoots: straight left, then
// angled up and down by Spread.
func FireBurst(v *Vehicle, score int, t Tuning) [BurstSize]Projectile {
	spread := Spread(score, t)
	angles := [BurstSize]float64{0, -spread, spread}
	speed := math.Max(t.ProjectileMinSpeed, v.Speed+t.ProjectileSpeedBonus)

	var burst [BurstSize]Projectile
	for i, angle := range angles {
		burst[i] = Projectile{
			X:      v.X + t.ProjectileOffsetX,
			Y:      v.Y + v.Height/2 + t.ProjectileOffsetY,
			Width:  t.ProjectileWidth,
			Height: t.ProjectileHeight,
			VX:     -speed * math.Cos(angle),
			VY:     speed * math.Sin(angle),
		}
	}
	return burst
}
