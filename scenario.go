package main

import "fmt"

// Scenario holds the world settings for a simulation run: window
// dimensions, spawn scaling and the ground line. The renderer-only
// keys of the environment config (sprites, background) are ignored
// here.
type Scenario struct {
	Width, Height      float64
	PlanePosScale      float64
	GroundHeight       float64
	CollisionElevation float64
}

// boundsMargin is how far outside the window projectiles may fly
// before they are culled
const boundsMargin = 10.0

// DefaultScenario returns the reference 1280x720 world
func DefaultScenario() Scenario {
	return Scenario{
		Width:         1280,
		Height:        720,
		PlanePosScale: 1.0,
		GroundHeight:  50,
	}
}

// NewScenario validates an environment config
func NewScenario(cfg EnvConfig) (Scenario, error) {
	if len(cfg.WindowDimensions) != 2 {
		return Scenario{}, fmt.Errorf("%w: window_dimensions must be [width, height]", ErrInvalidConfig)
	}
	w, h := cfg.WindowDimensions[0], cfg.WindowDimensions[1]
	if w <= 0 || h <= 0 {
		return Scenario{}, fmt.Errorf("%w: window_dimensions must be > 0", ErrInvalidConfig)
	}
	if cfg.PlanePosScale < 0 {
		return Scenario{}, fmt.Errorf("%w: plane_pos_scale must be >= 0", ErrInvalidConfig)
	}
	if cfg.Ground.Height < 1 {
		return Scenario{}, fmt.Errorf("%w: ground.height must be >= 1", ErrInvalidConfig)
	}
	if cfg.Ground.CollisionElevation < 0 {
		return Scenario{}, fmt.Errorf("%w: ground.collision_elevation must be >= 0", ErrInvalidConfig)
	}
	return Scenario{
		Width:              w,
		Height:             h,
		PlanePosScale:      cfg.PlanePosScale,
		GroundHeight:       cfg.Ground.Height,
		CollisionElevation: cfg.Ground.CollisionElevation,
	}, nil
}

// FloorY returns the y coordinate of the collision line above the
// ground. Anything whose bottom edge reaches it counts as grounded.
func (s Scenario) FloorY() float64 {
	return s.Height - s.GroundHeight - s.CollisionElevation
}

// ProjectileOut reports whether a projectile has left the playable
// area: below the floor, just above the ceiling, or past either side.
func (s Scenario) ProjectileOut(p *Projectile) bool {
	return p.Y+p.H/2 >= s.FloorY() ||
		p.Y-p.H/2 < -boundsMargin ||
		p.X+p.W/2 < -boundsMargin ||
		p.X-p.W/2 > s.Width+boundsMargin
}
