// Package world holds the headless simulation: entities, the update step,
// spawn timers and the driver that ties them to a display refresh.
package world

import "time"

// Tuning collects every gameplay constant. The zero value is not usable;
// start from DefaultTuning.
type Tuning struct {
	Width  float64
	Height float64

	PlayerStartX float64
	PlayerSize   float64
	PlayerStep   float64

	PursuerSize     float64
	PursuerMargin   float64
	PursuerInterval time.Duration

	VehicleWidth       float64
	VehicleHeight      float64
	VehicleMargin      float64
	VehicleSpeedFactor float64
	VehicleInterval    time.Duration
	FireCooldown       int

	ProjectileWidth      float64
	ProjectileHeight     float64
	ProjectileMinSpeed   float64
	ProjectileSpeedBonus float64
	ProjectileOffsetX    float64
	ProjectileOffsetY    float64
	MaxSpread            float64
	SpreadDivisor        float64

	StartSpeed float64
	SpeedStep  float64
	SpeedEvery int

	AnimationDelay  int
	AnimationFrames int

	ShrinkFactor float64
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		Width:  800,
		Height: 400,

		PlayerStartX: 50,
		PlayerSize:   70,
		PlayerStep:   4,

		PursuerSize:     70,
		PursuerMargin:   80,
		PursuerInterval: 2000 * time.Millisecond,

		VehicleWidth:       100,
		VehicleHeight:      50,
		VehicleMargin:      60,
		VehicleSpeedFactor: 0.8,
		VehicleInterval:    5000 * time.Millisecond,
		FireCooldown:       100,

		ProjectileWidth:      20,
		ProjectileHeight:     10,
		ProjectileMinSpeed:   4,
		ProjectileSpeedBonus: 3,
		ProjectileOffsetX:    -6,
		ProjectileOffsetY:    -2.5,
		MaxSpread:            0.4,
		SpreadDivisor:        2000,

		StartSpeed: 2,
		SpeedStep:  0.5,
		SpeedEvery: 300,

		AnimationDelay:  10,
		AnimationFrames: 4,

		ShrinkFactor: DefaultShrink,
	}
}
