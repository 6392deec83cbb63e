package main

import (
	"math"
	"testing"
)

func testPlane() *Plane {
	return &Plane{
		ID: "owner1", X: 500, Y: 500, VX: 80, VY: 0,
		Pitch: 0, Throttle: 100, W: 60, H: 30,
		Profile: testProfile(), Alive: true,
	}
}

func TestSpawnProjectile(t *testing.T) {
	pm := NewProjectileManager()
	owner := testPlane()

	proj := pm.Spawn(owner)
	if proj == nil {
		t.Fatal("spawn returned nil")
	}
	if proj.OwnerID != "owner1" {
		t.Errorf("expected owner owner1, got %s", proj.OwnerID)
	}
	if !proj.Alive {
		t.Error("projectile should be alive")
	}
	// Pitch 0 points right: spawns at the nose, ahead of center
	if proj.X <= owner.X {
		t.Error("projectile should spawn ahead of the plane")
	}
	// Reference behavior: bullet speed only, no inherited velocity
	if math.Abs(proj.VX-owner.Profile.Bullet.Speed) > 1e-9 {
		t.Errorf("expected VX %f, got %f", owner.Profile.Bullet.Speed, proj.VX)
	}
	if math.Abs(proj.VY) > 1e-9 {
		t.Errorf("expected VY 0, got %f", proj.VY)
	}
	if proj.LifetimeLimit != owner.Profile.Bullet.Lifetime {
		t.Errorf("expected lifetime %f, got %f", owner.Profile.Bullet.Lifetime, proj.LifetimeLimit)
	}
	if pm.Count() != 1 {
		t.Errorf("expected 1 live projectile, got %d", pm.Count())
	}
}

func TestSpawnInheritVelocityFactor(t *testing.T) {
	pm := NewProjectileManager()
	pm.InheritVelocityFactor = 1.0
	owner := testPlane()

	proj := pm.Spawn(owner)
	want := owner.Profile.Bullet.Speed + owner.VX
	if math.Abs(proj.VX-want) > 1e-9 {
		t.Errorf("expected VX %f with full inheritance, got %f", want, proj.VX)
	}
}

func TestSpawnFiringDirection(t *testing.T) {
	pm := NewProjectileManager()
	owner := testPlane()
	owner.Pitch = 90 // straight up (-y on screen)

	proj := pm.Spawn(owner)
	if math.Abs(proj.VX) > 1e-9 {
		t.Errorf("expected VX 0 firing straight up, got %f", proj.VX)
	}
	if proj.VY >= 0 {
		t.Errorf("expected negative VY firing straight up, got %f", proj.VY)
	}
}

// A projectile with speed 10 and lifetime 500 survives the tick that
// brings it to exactly 500 traveled and retires on the next one, never
// earlier.
func TestProjectileRetiresWhenDistanceExceedsLifetime(t *testing.T) {
	pm := NewProjectileManager()
	proj := &Projectile{
		ID: "b1", X: 0, Y: 0, VX: 10, VY: 0,
		LifetimeLimit: 500, Alive: true,
	}
	pm.projectiles[proj.ID] = proj

	for tick := 1; tick <= 50; tick++ {
		retired := pm.AdvanceAll(1.0)
		if len(retired) != 0 {
			t.Fatalf("projectile retired early at tick %d (distance %f)", tick, proj.DistanceTraveled)
		}
	}
	if proj.DistanceTraveled != 500 {
		t.Fatalf("expected distance 500 after 50 ticks, got %f", proj.DistanceTraveled)
	}

	retired := pm.AdvanceAll(1.0)
	if len(retired) != 1 || retired[0] != "b1" {
		t.Fatalf("expected b1 retired at tick 51, got %v", retired)
	}
	if proj.Alive {
		t.Error("retired projectile should not be alive")
	}
	if pm.Get("b1") != nil {
		t.Error("retired projectile should be removed from the manager")
	}
}

func TestProjectileDistanceMonotone(t *testing.T) {
	pm := NewProjectileManager()
	proj := pm.Spawn(testPlane())

	last := proj.DistanceTraveled
	for i := 0; i < 20; i++ {
		pm.AdvanceAll(1.0 / 60.0)
		if proj.DistanceTraveled < last {
			t.Fatal("distance traveled must be monotonically increasing")
		}
		last = proj.DistanceTraveled
	}
}

func TestRetireIsTerminal(t *testing.T) {
	pm := NewProjectileManager()
	proj := pm.Spawn(testPlane())

	pm.Retire(proj.ID)
	if proj.Alive {
		t.Error("retired projectile should not be alive")
	}
	if pm.Count() != 0 {
		t.Errorf("expected empty manager, got %d", pm.Count())
	}
	// Retiring again is a no-op
	pm.Retire(proj.ID)
}

func TestSpawnCapacity(t *testing.T) {
	pm := NewProjectileManager()
	owner := testPlane()
	for i := 0; i < maxProjectiles; i++ {
		if pm.Spawn(owner) == nil {
			t.Fatalf("spawn %d failed below the cap", i)
		}
	}
	if pm.Spawn(owner) != nil {
		t.Error("spawn should return nil at capacity")
	}
}
