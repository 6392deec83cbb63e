package main

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when an aircraft, target or scenario
// definition violates a value constraint. A failed type is skipped;
// other types keep loading.
var ErrInvalidConfig = errors.New("invalid config")

// AoABound marks one side of the stall envelope: the critical angle of
// attack in degrees and the lift coefficient reached at that angle.
// The lower bound's coefficient is usually negative (lift pointing the
// wrong way past a negative-AoA stall).
type AoABound struct {
	AngleDeg float64
	Coef     float64
}

// StartState holds the spawn parameters for a plane type
type StartState struct {
	Throttle  float64
	Pitch     float64
	VX, VY    float64
	X, Y      float64
	Deviation float64 // spawn position jitter, px per axis
	W, H      float64
}

// BulletSpec holds the projectile parameters for a plane type
type BulletSpec struct {
	Sprite   string
	Speed    float64
	Lifetime float64 // maximum travel distance
	W, H     float64
}

// AeroProfile is the immutable set of physical constants for one
// aircraft type. One profile is built per type and shared by pointer
// across every Plane instance of that type; it is never mutated after
// construction, so no locking is needed.
type AeroProfile struct {
	Name        string
	Mass        float64
	EngineForce float64
	Agility     float64 // max pitch change, degrees per second
	DragConst   float64
	LiftConst   float64
	CritLow     AoABound // stall boundary at negative AoA
	CritHigh    AoABound // stall boundary at positive AoA
	LiftCoef0   float64  // lift coefficient at AoA = 0
	DragCoef0   float64  // drag coefficient at AoA = 0

	Start  StartState
	Bullet BulletSpec

	// Sprite paths are carried for the renderer; the simulation never
	// opens them.
	SideSprite string
	TopSprite  string
}

// NewAeroProfile validates a decoded plane config and freezes it into
// an AeroProfile. Every violated constraint is reported wrapped in
// ErrInvalidConfig.
func NewAeroProfile(name string, cfg PlaneConfig) (*AeroProfile, error) {
	p := cfg.Properties
	if p.Mass <= 0 {
		return nil, fmt.Errorf("%w: mass must be > 0, got %v", ErrInvalidConfig, p.Mass)
	}
	if p.EngineForce <= 0 {
		return nil, fmt.Errorf("%w: engine_force must be > 0, got %v", ErrInvalidConfig, p.EngineForce)
	}
	if p.Agility <= 0 {
		return nil, fmt.Errorf("%w: agility must be > 0, got %v", ErrInvalidConfig, p.Agility)
	}
	if p.DragConstant <= 0 || p.LiftConstant <= 0 {
		return nil, fmt.Errorf("%w: drag_constant and lift_constant must be > 0", ErrInvalidConfig)
	}
	low, err := boundPair("critical_aoa_lower_bound", p.CriticalAoALowerBound)
	if err != nil {
		return nil, err
	}
	high, err := boundPair("critical_aoa_higher_bound", p.CriticalAoAHigherBound)
	if err != nil {
		return nil, err
	}
	if low.AngleDeg >= 0 {
		return nil, fmt.Errorf("%w: critical_aoa_lower_bound angle must be < 0, got %v", ErrInvalidConfig, low.AngleDeg)
	}
	if high.AngleDeg <= 0 {
		return nil, fmt.Errorf("%w: critical_aoa_higher_bound angle must be > 0, got %v", ErrInvalidConfig, high.AngleDeg)
	}
	if p.LiftCoefficientAoA0 < 0 || p.DragCoefficientAoA0 < 0 {
		return nil, fmt.Errorf("%w: zero-AoA coefficients must be >= 0", ErrInvalidConfig)
	}
	if !AllFinite(p.Mass, p.EngineForce, p.Agility, p.DragConstant, p.LiftConstant,
		p.LiftCoefficientAoA0, p.DragCoefficientAoA0) {
		return nil, fmt.Errorf("%w: non-finite property value", ErrInvalidConfig)
	}

	s := cfg.StartingConfig
	if s.InitialThrottle < 0 || s.InitialThrottle > 100 {
		return nil, fmt.Errorf("%w: initial_throttle must be in [0, 100], got %v", ErrInvalidConfig, s.InitialThrottle)
	}
	if len(s.InitialVelocity) != 2 {
		return nil, fmt.Errorf("%w: initial_velocity must be [vx, vy]", ErrInvalidConfig)
	}
	if len(s.InitialPosition) != 2 {
		return nil, fmt.Errorf("%w: initial_position must be [x, y]", ErrInvalidConfig)
	}
	if s.PositionPxDeviation < 0 {
		return nil, fmt.Errorf("%w: position_px_deviation must be >= 0, got %v", ErrInvalidConfig, s.PositionPxDeviation)
	}
	w, h, err := sizePair("starting_config.size", s.Size)
	if err != nil {
		return nil, err
	}

	b := cfg.BulletConfig
	if b.Speed <= 0 {
		return nil, fmt.Errorf("%w: bullet_config.speed must be > 0, got %v", ErrInvalidConfig, b.Speed)
	}
	if b.Lifetime <= 0 {
		return nil, fmt.Errorf("%w: bullet_config.lifetime must be > 0, got %v", ErrInvalidConfig, b.Lifetime)
	}
	bw, bh, err := sizePair("bullet_config.size", b.Size)
	if err != nil {
		return nil, err
	}

	return &AeroProfile{
		Name:        name,
		Mass:        p.Mass,
		EngineForce: p.EngineForce,
		Agility:     p.Agility,
		DragConst:   p.DragConstant,
		LiftConst:   p.LiftConstant,
		CritLow:     low,
		CritHigh:    high,
		LiftCoef0:   p.LiftCoefficientAoA0,
		DragCoef0:   p.DragCoefficientAoA0,
		Start: StartState{
			Throttle:  s.InitialThrottle,
			Pitch:     s.InitialPitch,
			VX:        s.InitialVelocity[0],
			VY:        s.InitialVelocity[1],
			X:         s.InitialPosition[0],
			Y:         s.InitialPosition[1],
			Deviation: s.PositionPxDeviation,
			W:         w,
			H:         h,
		},
		Bullet: BulletSpec{
			Sprite:   b.Sprite,
			Speed:    b.Speed,
			Lifetime: b.Lifetime,
			W:        bw,
			H:        bh,
		},
		SideSprite: cfg.Sprite.SideViewDir,
		TopSprite:  cfg.Sprite.TopViewDir,
	}, nil
}

// boundPair decodes a [angle, coefficient] pair. The coefficient may be
// negative (lower stall bound) but must be finite.
func boundPair(key string, pair []float64) (AoABound, error) {
	if len(pair) != 2 {
		return AoABound{}, fmt.Errorf("%w: %s must be [angle, coefficient]", ErrInvalidConfig, key)
	}
	if !AllFinite(pair[0], pair[1]) {
		return AoABound{}, fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, key)
	}
	return AoABound{AngleDeg: pair[0], Coef: pair[1]}, nil
}

func sizePair(key string, pair []float64) (float64, float64, error) {
	if len(pair) != 2 {
		return 0, 0, fmt.Errorf("%w: %s must be [width, height]", ErrInvalidConfig, key)
	}
	if pair[0] <= 0 || pair[1] <= 0 {
		return 0, 0, fmt.Errorf("%w: %s dimensions must be > 0", ErrInvalidConfig, key)
	}
	return pair[0], pair[1], nil
}
