package main

import (
	"fmt"
	"math/rand"
)

// Target is a static collidable box the planes shoot at. Position is
// the center, randomized within the configured deviation box of the
// base point at spawn.
type Target struct {
	X, Y  float64
	W, H  float64
	Alive bool
}

// NewTarget validates a target config and spawns the target with
// jittered position
func NewTarget(cfg TargetConfig, rng *rand.Rand) (*Target, error) {
	w, h, err := sizePair("target size", cfg.Size)
	if err != nil {
		return nil, err
	}
	if len(cfg.Position) != 2 {
		return nil, fmt.Errorf("%w: target position must be [x, y]", ErrInvalidConfig)
	}
	if cfg.PositionPxDeviation < 0 {
		return nil, fmt.Errorf("%w: target position_px_deviation must be >= 0", ErrInvalidConfig)
	}
	dev := cfg.PositionPxDeviation
	return &Target{
		X:     cfg.Position[0] + (rng.Float64()*2-1)*dev,
		Y:     cfg.Position[1] + (rng.Float64()*2-1)*dev,
		W:     w,
		H:     h,
		Alive: true,
	}, nil
}
