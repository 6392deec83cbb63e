package main

import "math"

const maxProjectiles = 500

// Projectile is one fired bullet. It flies in a straight line with no
// aerodynamic forces and is retired once its accumulated travel
// distance exceeds its lifetime limit.
type Projectile struct {
	ID      string
	OwnerID string
	X, Y    float64
	VX, VY  float64
	W, H    float64

	DistanceTraveled float64 // monotonically increasing
	LifetimeLimit    float64 // max travel distance before retirement
	Alive            bool
}

// ProjectileManager owns every live projectile. Retirement is
// terminal: a retired projectile's id is never reused by the same
// manager.
type ProjectileManager struct {
	projectiles map[string]*Projectile

	// InheritVelocityFactor is the fraction of the firing plane's
	// velocity added to a new projectile. At the default of 0 bullets
	// fly at bullet speed along the nose regardless of how fast the
	// plane is moving.
	InheritVelocityFactor float64
}

// NewProjectileManager creates an empty manager
func NewProjectileManager() *ProjectileManager {
	return &ProjectileManager{
		projectiles: make(map[string]*Projectile),
	}
}

// Spawn fires a projectile from the plane's nose along its heading at
// the profile's bullet speed. Returns nil when the manager is full.
func (pm *ProjectileManager) Spawn(p *Plane) *Projectile {
	if len(pm.projectiles) >= maxProjectiles {
		return nil
	}
	hx, hy := p.Heading()
	nx, ny := p.NosePosition()
	b := p.Profile.Bullet
	id := GenerateID(3)
	for pm.projectiles[id] != nil {
		id = GenerateID(3)
	}
	proj := &Projectile{
		ID:            id,
		OwnerID:       p.ID,
		X:             nx,
		Y:             ny,
		VX:            hx*b.Speed + p.VX*pm.InheritVelocityFactor,
		VY:            hy*b.Speed + p.VY*pm.InheritVelocityFactor,
		W:             b.W,
		H:             b.H,
		LifetimeLimit: b.Lifetime,
		Alive:         true,
	}
	pm.projectiles[proj.ID] = proj
	return proj
}

// AdvanceAll moves every live projectile by velocity x dt, accumulates
// traveled distance, and retires any projectile whose distance
// strictly exceeds its lifetime limit. Retired ids are returned so the
// caller can drop renderer/collision references.
func (pm *ProjectileManager) AdvanceAll(dt float64) []string {
	var retired []string
	for id, proj := range pm.projectiles {
		proj.X += proj.VX * dt
		proj.Y += proj.VY * dt
		proj.DistanceTraveled += math.Sqrt(proj.VX*proj.VX+proj.VY*proj.VY) * dt
		if proj.DistanceTraveled > proj.LifetimeLimit {
			proj.Alive = false
			delete(pm.projectiles, id)
			retired = append(retired, id)
		}
	}
	return retired
}

// Retire removes a projectile before its lifetime is up (collision or
// out of bounds)
func (pm *ProjectileManager) Retire(id string) {
	if proj, ok := pm.projectiles[id]; ok {
		proj.Alive = false
		delete(pm.projectiles, id)
	}
}

// Get returns a live projectile by id, or nil
func (pm *ProjectileManager) Get(id string) *Projectile {
	return pm.projectiles[id]
}

// Count returns the number of live projectiles
func (pm *ProjectileManager) Count() int {
	return len(pm.projectiles)
}

// ForEach visits every live projectile
func (pm *ProjectileManager) ForEach(fn func(*Projectile)) {
	for _, proj := range pm.projectiles {
		fn(proj)
	}
}
