package main

import (
	"math"
	"testing"
)

func testEnvOptions() EnvOptions {
	return EnvOptions{
		Profile:  testProfile(),
		Target:   TargetConfig{Size: []float64{50, 50}, Position: []float64{800, 500}, PositionPxDeviation: 50},
		Scenario: DefaultScenario(),
	}
}

func TestEnvResetDeterministic(t *testing.T) {
	e1, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}
	e2, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}

	o1, _ := e1.Reset(42)
	o2, _ := e2.Reset(42)
	if o1 != o2 {
		t.Errorf("same seed must give the same initial observation: %v vs %v", o1, o2)
	}
	t1, t2 := e1.Sim().Target(), e2.Sim().Target()
	if t1.X != t2.X || t1.Y != t2.Y {
		t.Error("same seed must give the same target position")
	}

	o3, _ := e1.Reset(43)
	if o1 == o3 {
		t.Error("different seeds should give different spawns")
	}
}

func TestEnvStepRewardSign(t *testing.T) {
	env, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}
	obs, reward, terminated, truncated, err := env.Step(ActionIdle)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if terminated || truncated {
		t.Fatal("episode should not end on the first idle tick")
	}
	for _, v := range obs {
		if !Finite(v) {
			t.Fatalf("non-finite observation %v", obs)
		}
	}
	// Tracking reward is -50 * |vhat - uhat|, always in [-100, 0]
	if reward > 0 || reward < -100 {
		t.Errorf("tracking reward out of range: %v", reward)
	}
}

func TestEnvRewardPrefersFlyingAtTarget(t *testing.T) {
	env, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}
	agent := env.Agent()
	tgt := env.Sim().Target()

	// Point the velocity straight at the target
	dx, dy := tgt.X-agent.X, tgt.Y-agent.Y
	d := math.Sqrt(dx*dx + dy*dy)
	agent.VX, agent.VY = 100*dx/d, 100*dy/d
	toward := env.trackingReward()

	agent.VX, agent.VY = -agent.VX, -agent.VY
	away := env.trackingReward()

	if toward <= away {
		t.Errorf("flying at the target should score higher: toward=%v away=%v", toward, away)
	}
	if math.Abs(toward) > 1 {
		t.Errorf("perfectly aligned flight should score near 0, got %v", toward)
	}
	if math.Abs(away - -100) > 1 {
		t.Errorf("flying directly away should score near -100, got %v", away)
	}
}

func TestEnvTruncatesOnCrash(t *testing.T) {
	env, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}
	// Drop the agent onto the floor
	agent := env.Agent()
	agent.Y = env.Sim().scenario.FloorY() - 1
	agent.VX, agent.VY = 0, 1000
	agent.Throttle = 0

	_, reward, terminated, truncated, err := env.Step(ActionIdle)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if terminated {
		t.Error("crash should truncate, not terminate")
	}
	if !truncated {
		t.Fatal("expected truncation after crashing into the ground")
	}
	if reward > truncationPenalty/2 {
		t.Errorf("crash should be heavily penalized, got %v", reward)
	}

	// Stepping a finished episode is inert
	_, reward, _, truncAgain, _ := env.Step(ActionThrottleUp)
	if reward != 0 || !truncAgain {
		t.Error("stepping a finished episode should return zero reward and keep the flags")
	}
}

func TestEnvTerminatesOnTargetHit(t *testing.T) {
	env, err := NewEnv(testEnvOptions(), 42)
	if err != nil {
		t.Fatalf("create env: %v", err)
	}
	// Park a projectile owned by the agent right next to the target
	tgt := env.Sim().Target()
	agent := env.Agent()
	agent.Y = 100 // keep the agent clear of the ground
	agent.VY = 0
	proj := &Projectile{
		ID: "b1", OwnerID: agent.ID, X: tgt.X - 40, Y: tgt.Y,
		VX: 600, VY: 0, W: 10, H: 5,
		LifetimeLimit: 1e9, Alive: true,
	}
	env.Sim().projectiles.projectiles[proj.ID] = proj

	var terminated bool
	var reward float64
	for i := 0; i < 10 && !terminated; i++ {
		_, reward, terminated, _, err = env.Step(ActionIdle)
		if err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
	if !terminated {
		t.Fatal("expected termination once the projectile hits the target")
	}
	if reward < terminalBonus/2 {
		t.Errorf("terminal reward should include the bonus, got %v", reward)
	}
}
