package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	planeFlag := flag.String("planes", "config/i16_falangist.yaml", "comma-separated plane YAML files; the first valid one is flown")
	targetFlag := flag.String("target", "", "target YAML file (default: built-in balloon)")
	envFlag := flag.String("env", "", "environment YAML file (default: 1280x720 world)")
	dbFlag := flag.String("db", "", "SQLite recording path (empty disables recording)")
	ticksFlag := flag.Int("ticks", 36000, "maximum ticks per episode")
	dtFlag := flag.Float64("dt", DefaultDt, "seconds per tick")
	seedFlag := flag.Int64("seed", 42, "episode RNG seed")
	policyFlag := flag.String("policy", "chase", "scripted policy: chase, circle or idle")
	flag.Parse()

	scenario := DefaultScenario()
	if *envFlag != "" {
		cfg, err := LoadEnvConfig(*envFlag)
		if err != nil {
			log.Fatalf("environment config: %v", err)
		}
		scenario, err = NewScenario(cfg)
		if err != nil {
			log.Fatalf("environment config: %v", err)
		}
	}

	targetCfg := TargetConfig{
		Size:     []float64{50, 50},
		Position: []float64{800, 500},
	}
	if *targetFlag != "" {
		cfg, err := LoadTargetConfig(*targetFlag)
		if err != nil {
			log.Fatalf("target config: %v", err)
		}
		targetCfg = cfg
	}

	// A bad plane file skips only that type; the rest still load
	var profile *AeroProfile
	for _, path := range strings.Split(*planeFlag, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		p, err := LoadAeroProfile(path)
		if err != nil {
			log.Printf("skipping plane %s: %v", path, err)
			continue
		}
		log.Printf("loaded plane type %s (mass %.0f, engine %.0f)", p.Name, p.Mass, p.EngineForce)
		if profile == nil {
			profile = p
		}
	}
	if profile == nil {
		log.Fatal("no valid plane config loaded")
	}

	var db *DB
	if *dbFlag != "" {
		var err error
		db, err = OpenDB(*dbFlag)
		if err != nil {
			log.Fatalf("open recording db: %v", err)
		}
		defer db.Close()
	}

	env, err := NewEnv(EnvOptions{
		Profile:  profile,
		Target:   targetCfg,
		Scenario: scenario,
		Dt:       *dtFlag,
		DB:       db,
	}, *seedFlag)
	if err != nil {
		log.Fatalf("create environment: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("flying %s in %vx%v world, seed %d, policy %s",
		profile.Name, scenario.Width, scenario.Height, *seedFlag, *policyFlag)

	var totalReward float64
	terminated, truncated := false, false
	ticks := 0

run:
	for ; ticks < *ticksFlag; ticks++ {
		select {
		case <-stop:
			log.Println("interrupted")
			break run
		default:
		}
		action := pickAction(*policyFlag, env)
		_, reward, term, trunc, err := env.Step(action)
		if err != nil {
			log.Fatalf("tick %d: %v", ticks, err)
		}
		totalReward += reward
		if term || trunc {
			terminated, truncated = term, trunc
			break
		}
	}

	if err := env.Close(); err != nil {
		log.Printf("close environment: %v", err)
	}

	agent := env.Agent()
	switch {
	case terminated:
		log.Printf("target destroyed after %d ticks", ticks+1)
	case truncated:
		log.Printf("plane crashed after %d ticks", ticks+1)
	default:
		log.Printf("episode ended after %d ticks", ticks)
	}
	log.Printf("total reward %.1f, distance flown %.0f, shots fired %d",
		totalReward, agent.DistFlown, agent.ShotsFired)
}

// pickAction implements the scripted policies: chase turns toward the
// target and fires when lined up, circle holds a climbing turn, idle
// does nothing
func pickAction(policy string, env *Env) Action {
	switch policy {
	case "circle":
		return ActionPitchUp
	case "idle":
		return ActionIdle
	default: // chase
		agent := env.Agent()
		t := env.Sim().Target()
		if t == nil {
			return ActionIdle
		}
		desired := -math.Atan2(t.Y-agent.Y, t.X-agent.X) * 180 / math.Pi
		diff := NormalizeAngleDeg(desired - agent.Pitch)
		switch {
		case diff > 2:
			return ActionPitchUp
		case diff < -2:
			return ActionPitchDown
		case agent.Throttle < 80:
			return ActionThrottleUp
		default:
			return ActionFire
		}
	}
}
