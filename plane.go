package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	FireCooldown = 0.15 // seconds between shots
	Gravity      = 9.81 // downward accel, +y is down in screen coords
)

// ErrInvalidState marks a programming-contract violation: the
// integrator was handed non-finite state or inputs. It is surfaced to
// the caller, never silently corrected.
var ErrInvalidState = errors.New("invalid state")

// Plane is one simulated aircraft instance. Position is the center of
// its bounding box; +x is right, +y is down. Pitch is in degrees with
// 0 pointing right and positive pitch raising the nose (toward -y).
// Each plane is mutated by exactly one simulation tick at a time.
type Plane struct {
	ID       string
	X, Y     float64
	VX, VY   float64
	Pitch    float64 // degrees
	Throttle float64 // percent, clamped [0, 100]
	W, H     float64
	Profile  *AeroProfile // shared, read-only

	Alive      bool
	FireCD     float64 // fire cooldown remaining, seconds
	AoADeg     float64 // angle of attack from the last Step
	DistFlown  float64 // total distance covered, for run summaries
	ShotsFired int
}

// NewPlane spawns a plane of the given type. The spawn position is the
// configured base point jittered uniformly within ±Deviation px on each
// axis; rng is injected so spawns are reproducible under a fixed seed.
func NewPlane(profile *AeroProfile, rng *rand.Rand) *Plane {
	s := profile.Start
	dev := s.Deviation
	return &Plane{
		ID:       GenerateID(4),
		X:        s.X + (rng.Float64()*2-1)*dev,
		Y:        s.Y + (rng.Float64()*2-1)*dev,
		VX:       s.VX,
		VY:       s.VY,
		Pitch:    s.Pitch,
		Throttle: s.Throttle,
		W:        s.W,
		H:        s.H,
		Profile:  profile,
		Alive:    true,
	}
}

// Heading returns the unit vector the nose points along
func (p *Plane) Heading() (float64, float64) {
	rad := -p.Pitch * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// Speed returns the velocity magnitude
func (p *Plane) Speed() float64 {
	return math.Sqrt(p.VX*p.VX + p.VY*p.VY)
}

// AngleOfAttack returns the angle in degrees between the velocity
// vector and the heading, wrapped to (-180, 180]
func (p *Plane) AngleOfAttack() float64 {
	hx, hy := p.Heading()
	return NormalizeAngleDeg((math.Atan2(hx, hy) - math.Atan2(p.VX, p.VY)) * 180 / math.Pi)
}

// Step advances the plane by dt seconds using semi-implicit Euler:
// forces are combined into an acceleration, velocity is updated first,
// then position moves with the new velocity. throttleDelta is added to
// the throttle (clamped to [0, 100]); pitch turns toward pitchTarget at
// a rate bounded by the profile's agility. dt = 0 leaves position and
// velocity untouched while throttle/pitch targeting still applies.
func (p *Plane) Step(dt, throttleDelta, pitchTarget float64) error {
	if !AllFinite(p.X, p.Y, p.VX, p.VY, p.Pitch, p.Throttle) {
		return fmt.Errorf("%w: plane %s has non-finite state", ErrInvalidState, p.ID)
	}
	if !AllFinite(dt, throttleDelta, pitchTarget) {
		return fmt.Errorf("%w: non-finite step input for plane %s", ErrInvalidState, p.ID)
	}

	// Turn toward target pitch, bounded by agility
	diff := NormalizeAngleDeg(pitchTarget - p.Pitch)
	maxTurn := p.Profile.Agility * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	p.Pitch = NormalizeAngleDeg(p.Pitch + diff)

	p.Throttle = Clamp(p.Throttle+throttleDelta, 0, 100)

	hx, hy := p.Heading()
	speed := p.Speed()
	var vux, vuy float64
	if speed != 0 {
		vux = p.VX / speed
		vuy = p.VY / speed
	}
	p.AoADeg = NormalizeAngleDeg((math.Atan2(hx, hy) - math.Atan2(p.VX, p.VY)) * 180 / math.Pi)

	// Thrust along the heading
	thrust := p.Profile.EngineForce * (p.Throttle / 100)
	fx := thrust * hx
	fy := thrust * hy

	// Lift acts perpendicular to the velocity (nose-up side), drag
	// opposes it
	lift, drag := ComputeForces(p.AoADeg, speed, p.Profile)
	fx += lift * vuy
	fy += lift * -vux
	fx += drag * -vux
	fy += drag * -vuy

	fy += Gravity * p.Profile.Mass

	p.VX += dt * fx / p.Profile.Mass
	p.VY += dt * fy / p.Profile.Mass
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.DistFlown += speed * dt

	// Past the stall envelope the airflow shoves the nose back toward
	// level: a crude induced torque proportional to drag
	if p.AoADeg < p.Profile.CritLow.AngleDeg {
		p.Pitch = NormalizeAngleDeg(p.Pitch + p.Profile.Agility*drag*1e-4*dt)
	} else if p.AoADeg > p.Profile.CritHigh.AngleDeg {
		p.Pitch = NormalizeAngleDeg(p.Pitch - p.Profile.Agility*drag*1e-4*dt)
	}

	if p.FireCD > 0 {
		p.FireCD -= dt
	}
	return nil
}

// CanFire returns true when the fire cooldown has elapsed
func (p *Plane) CanFire() bool {
	return p.Alive && p.FireCD <= 0
}

// NosePosition returns the point at the front tip of the plane
func (p *Plane) NosePosition() (float64, float64) {
	hx, hy := p.Heading()
	return p.X + hx*p.W/2, p.Y + hy*p.W/2
}
