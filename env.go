package main

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultDt is the fixed step used by the episode environment
	DefaultDt = 1.0 / 60.0

	terminalBonus     = 1e6
	truncationPenalty = -1e9
)

// Obs is the observation vector: agent position and velocity
type Obs [4]float64

// EnvOptions configures an episode environment
type EnvOptions struct {
	Profile  *AeroProfile
	Target   TargetConfig
	Scenario Scenario
	Dt       float64 // 0 means DefaultDt
	DB       *DB     // optional; a new recording run per episode
}

// Env drives one agent through target-practice episodes: step/reset
// semantics with a scalar reward. An episode terminates when the
// target is destroyed and truncates when the agent crashes.
type Env struct {
	opts      EnvOptions
	dt        float64
	sim       *Sim
	agent     *Plane
	rec       *Recorder
	seed      int64
	iteration int
	done      bool
}

// NewEnv creates an environment and resets it with the given seed
func NewEnv(opts EnvOptions, seed int64) (*Env, error) {
	if opts.Profile == nil {
		return nil, fmt.Errorf("%w: env requires a plane profile", ErrInvalidConfig)
	}
	dt := opts.Dt
	if dt == 0 {
		dt = DefaultDt
	}
	e := &Env{opts: opts, dt: dt}
	if _, err := e.Reset(seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset starts a fresh episode: re-seeded RNG, respawned agent and
// target. The same seed always produces the same spawns.
func (e *Env) Reset(seed int64) (Obs, error) {
	if err := e.stopRecorder("reset"); err != nil {
		return Obs{}, err
	}
	e.seed = seed
	e.iteration++
	e.done = false

	rng := rand.New(rand.NewSource(seed))
	e.sim = NewSim(e.opts.Scenario, rng)
	if err := e.sim.SetTarget(e.opts.Target); err != nil {
		return Obs{}, err
	}
	e.agent = e.sim.SpawnPlane(e.opts.Profile)

	if e.opts.DB != nil {
		rec, err := NewRecorder(e.opts.DB, RunMeta{
			PlaneType: e.opts.Profile.Name,
			Seed:      seed,
		})
		if err != nil {
			return Obs{}, err
		}
		e.rec = rec
		e.sim.SetRecorder(rec)
	}
	return e.observe(), nil
}

// Step advances one tick with the given action. It returns the new
// observation, the reward, and the terminated/truncated flags.
// Stepping a finished episode keeps returning the final state with
// zero reward.
func (e *Env) Step(action Action) (Obs, float64, bool, bool, error) {
	if e.done {
		return e.observe(), 0, e.terminated(), e.truncated(), nil
	}
	events, err := e.sim.Update(e.dt, map[string]Action{e.agent.ID: action})
	if err != nil {
		return e.observe(), 0, false, false, err
	}

	reward := e.trackingReward()
	terminated := false
	truncated := false
	for _, evt := range events {
		switch evt.Type {
		case EvtTargetHit:
			if evt.PlaneID == e.agent.ID {
				terminated = true
				reward += terminalBonus
			}
		case EvtPlaneCrashed:
			if evt.PlaneID == e.agent.ID {
				truncated = true
				reward += truncationPenalty
			}
		}
	}
	if terminated || truncated {
		e.done = true
	}
	return e.observe(), reward, terminated, truncated, nil
}

// Sim exposes the underlying simulation (read-only use expected)
func (e *Env) Sim() *Sim {
	return e.sim
}

// Agent returns the controlled plane
func (e *Env) Agent() *Plane {
	return e.agent
}

// Close ends the episode and flushes any recording
func (e *Env) Close() error {
	return e.stopRecorder(e.outcome())
}

func (e *Env) observe() Obs {
	return Obs{e.agent.X, e.agent.Y, e.agent.VX, e.agent.VY}
}

func (e *Env) terminated() bool {
	t := e.sim.Target()
	return t != nil && !t.Alive
}

func (e *Env) truncated() bool {
	return !e.agent.Alive
}

func (e *Env) outcome() string {
	switch {
	case e.terminated():
		return "target_destroyed"
	case e.truncated():
		return "crashed"
	default:
		return "aborted"
	}
}

// trackingReward rewards flying toward the target: the negative
// distance between the agent's velocity unit vector and the unit
// vector pointing at the target, scaled by 50
func (e *Env) trackingReward() float64 {
	t := e.sim.Target()
	if t == nil {
		return 0
	}
	dx := t.X - e.agent.X
	dy := t.Y - e.agent.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0
	}
	ux, uy := dx/dist, dy/dist

	speed := e.agent.Speed()
	var vux, vuy float64
	if speed != 0 {
		vux = e.agent.VX / speed
		vuy = e.agent.VY / speed
	}
	ddx := vux - ux
	ddy := vuy - uy
	return -50 * math.Sqrt(ddx*ddx+ddy*ddy)
}

func (e *Env) stopRecorder(outcome string) error {
	if e.rec == nil {
		return nil
	}
	err := e.rec.Close(e.sim.Tick(), outcome)
	e.rec = nil
	if e.sim != nil {
		e.sim.SetRecorder(nil)
	}
	return err
}
