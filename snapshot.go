package main

import (
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// PlaneState is one plane's telemetry for a single tick
type PlaneState struct {
	ID       string  `msgpack:"id"`
	Type     string  `msgpack:"ty"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	VX       float64 `msgpack:"vx"`
	VY       float64 `msgpack:"vy"`
	Pitch    float64 `msgpack:"p"`
	Throttle float64 `msgpack:"th"`
	AoA      float64 `msgpack:"a"`
	Alive    bool    `msgpack:"al"`
}

// ProjectileState is one projectile's telemetry for a single tick
type ProjectileState struct {
	ID    string  `msgpack:"id"`
	Owner string  `msgpack:"o"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Dist  float64 `msgpack:"d"`
}

// Frame is the full telemetry record for one tick. Entities are sorted
// by id so encoding is deterministic for a given state.
type Frame struct {
	Tick        uint64            `msgpack:"t"`
	Planes      []PlaneState      `msgpack:"p"`
	Projectiles []ProjectileState `msgpack:"b"`
	TargetAlive bool              `msgpack:"ta"`
}

// EncodeFrame serializes a frame with msgpack
func EncodeFrame(f Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeFrame deserializes a frame
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	err := msgpack.Unmarshal(data, &f)
	return f, err
}

func planeState(p *Plane) PlaneState {
	return PlaneState{
		ID:       p.ID,
		Type:     p.Profile.Name,
		X:        p.X,
		Y:        p.Y,
		VX:       p.VX,
		VY:       p.VY,
		Pitch:    p.Pitch,
		Throttle: p.Throttle,
		AoA:      p.AoADeg,
		Alive:    p.Alive,
	}
}

func projectileState(p *Projectile) ProjectileState {
	return ProjectileState{
		ID:    p.ID,
		Owner: p.OwnerID,
		X:     p.X,
		Y:     p.Y,
		Dist:  p.DistanceTraveled,
	}
}

func sortPlaneStates(states []PlaneState) {
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
}

func sortProjectileStates(states []ProjectileState) {
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
}
