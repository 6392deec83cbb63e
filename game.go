package main

import (
	"math/rand"
	"sync"
)

const maxPlanes = 20

// Discrete per-tick actions
type Action int

const (
	ActionIdle         Action = 0
	ActionPitchUp      Action = 1
	ActionPitchDown    Action = 2
	ActionThrottleUp   Action = 3
	ActionThrottleDown Action = 4
	ActionFire         Action = 5
)

// throttleRate is the throttle change in percent per second while a
// throttle action is held
const throttleRate = 100.0

// Event types produced by a simulation tick
const (
	EvtTargetHit    = "target_hit"
	EvtPlaneCrashed = "plane_crashed"
	EvtShotFired    = "shot_fired"
)

// Event reports something that happened during a tick
type Event struct {
	Type         string
	PlaneID      string
	ProjectileID string
}

// Sim holds the state of one simulation: planes, projectiles, the
// target and the world. All entity mutation happens inside Update, one
// tick at a time; the mutex only guards against external readers
// polling state between ticks.
type Sim struct {
	mu          sync.RWMutex
	planes      map[string]*Plane
	projectiles *ProjectileManager
	target      *Target
	scenario    Scenario
	grid        *SpatialGrid
	rng         *rand.Rand
	tick        uint64
	rec         *Recorder // optional, nil disables recording
}

// NewSim creates a simulation for the given scenario. rng drives spawn
// jitter and is injected so runs are reproducible under a fixed seed.
func NewSim(scenario Scenario, rng *rand.Rand) *Sim {
	// Cell size ~2x a typical plane extent; projectiles and the target
	// span extra cells as needed
	return &Sim{
		planes:      make(map[string]*Plane),
		projectiles: NewProjectileManager(),
		scenario:    scenario,
		grid:        NewSpatialGrid(scenario.Width, scenario.Height, 80),
		rng:         rng,
	}
}

// SetRecorder attaches a telemetry recorder; pass nil to detach
func (s *Sim) SetRecorder(rec *Recorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
}

// SpawnPlane adds a plane of the given type. Returns nil when the
// plane limit is reached.
func (s *Sim) SpawnPlane(profile *AeroProfile) *Plane {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.planes) >= maxPlanes {
		return nil
	}
	p := NewPlane(profile, s.rng)
	s.planes[p.ID] = p
	return p
}

// RemovePlane removes a plane from the simulation
func (s *Sim) RemovePlane(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.planes, id)
}

// SetTarget places the target from its config
func (s *Sim) SetTarget(cfg TargetConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := NewTarget(cfg, s.rng)
	if err != nil {
		return err
	}
	s.target = t
	return nil
}

// Plane returns a plane by id, or nil
func (s *Sim) Plane(id string) *Plane {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planes[id]
}

// PlaneCount returns the number of planes in the sim
func (s *Sim) PlaneCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.planes)
}

// Target returns the current target, or nil
func (s *Sim) Target() *Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// Projectiles returns the projectile manager
func (s *Sim) Projectiles() *ProjectileManager {
	return s.projectiles
}

// Tick returns the number of completed ticks
func (s *Sim) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Update advances the whole simulation by dt seconds. actions maps
// plane id to the action held this tick; absent planes idle. The
// returned events cover shots, target hits and crashes. An error means
// a plane was fed or contained non-finite state; the tick is aborted.
func (s *Sim) Update(dt float64, actions map[string]Action) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []Event

	for id, p := range s.planes {
		if !p.Alive {
			continue
		}
		var throttleDelta float64
		pitchTarget := p.Pitch
		fire := false
		switch actions[id] {
		case ActionPitchUp:
			pitchTarget = p.Pitch + p.Profile.Agility*dt
		case ActionPitchDown:
			pitchTarget = p.Pitch - p.Profile.Agility*dt
		case ActionThrottleUp:
			throttleDelta = throttleRate * dt
		case ActionThrottleDown:
			throttleDelta = -throttleRate * dt
		case ActionFire:
			fire = true
		}
		if err := p.Step(dt, throttleDelta, pitchTarget); err != nil {
			return nil, err
		}
		if fire && p.CanFire() {
			if proj := s.projectiles.Spawn(p); proj != nil {
				p.FireCD = FireCooldown
				p.ShotsFired++
				events = append(events, Event{Type: EvtShotFired, PlaneID: id, ProjectileID: proj.ID})
			}
		}
	}

	s.projectiles.AdvanceAll(dt)

	// Cull projectiles that left the playable area
	var out []string
	s.projectiles.ForEach(func(proj *Projectile) {
		if s.scenario.ProjectileOut(proj) {
			out = append(out, proj.ID)
		}
	})
	for _, id := range out {
		s.projectiles.Retire(id)
	}

	events = append(events, s.resolveCollisions()...)

	// Ground collision
	for id, p := range s.planes {
		if p.Alive && p.Y+p.H/2 >= s.scenario.FloorY() {
			p.Alive = false
			events = append(events, Event{Type: EvtPlaneCrashed, PlaneID: id})
		}
	}

	s.tick++
	if s.rec != nil {
		s.rec.Record(s.snapshotLocked())
	}
	return events, nil
}

// resolveCollisions runs broad-phase over the grid, then exact rect
// tests for projectile/target and plane/target hits
func (s *Sim) resolveCollisions() []Event {
	if s.target == nil || !s.target.Alive {
		return nil
	}
	s.grid.Clear()
	s.grid.InsertRect(s.target.X, s.target.Y, s.target.W, s.target.H, EntityRef{Kind: 't'})

	var events []Event
	s.projectiles.ForEach(func(proj *Projectile) {
		if !s.target.Alive {
			return
		}
		for _, ref := range s.grid.QueryRect(proj.X, proj.Y, proj.W, proj.H) {
			if ref.Kind == 't' && ProjectileHitsTarget(proj, s.target) {
				s.target.Alive = false
				events = append(events, Event{Type: EvtTargetHit, PlaneID: proj.OwnerID, ProjectileID: proj.ID})
				break
			}
		}
	})
	for _, e := range events {
		s.projectiles.Retire(e.ProjectileID)
	}

	if s.target.Alive {
		for id, p := range s.planes {
			if p.Alive && PlaneHitsTarget(p, s.target) {
				p.Alive = false
				events = append(events, Event{Type: EvtPlaneCrashed, PlaneID: id})
			}
		}
	}
	return events
}

// Snapshot captures the current state as a telemetry frame
func (s *Sim) Snapshot() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Sim) snapshotLocked() Frame {
	f := Frame{Tick: s.tick, TargetAlive: s.target != nil && s.target.Alive}
	for _, p := range s.planes {
		f.Planes = append(f.Planes, planeState(p))
	}
	s.projectiles.ForEach(func(proj *Projectile) {
		f.Projectiles = append(f.Projectiles, projectileState(proj))
	})
	sortPlaneStates(f.Planes)
	sortProjectileStates(f.Projectiles)
	return f
}
