package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planeYAML = `
sprite:
  side_view_dir: assets/side.png
  top_view_dir: assets/top.png
properties:
  mass: 1200
  engine_force: 300
  agility: 100
  drag_constant: 0.6
  lift_constant: 100
  critical_aoa_lower_bound: [-15.0, -0.95]
  critical_aoa_higher_bound: [19.0, 1.4]
  lift_coefficient_aoa_0: 0.32
  drag_coefficient_aoa_0: 0.5
starting_config:
  initial_throttle: 100
  initial_pitch: 0
  initial_velocity: [100, 0]
  initial_position: [100, 300]
  position_px_deviation: 100
  size: [60, 30]
bullet_config:
  sprite: assets/bullet.png
  speed: 300
  lifetime: 500
  size: [10, 5]
`

func TestLoadPlaneConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "i16.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planeYAML), 0644))

	cfg, err := LoadPlaneConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, cfg.Properties.Mass)
	assert.Equal(t, 300.0, cfg.Properties.EngineForce)
	assert.Equal(t, []float64{-15.0, -0.95}, cfg.Properties.CriticalAoALowerBound)
	assert.Equal(t, []float64{19.0, 1.4}, cfg.Properties.CriticalAoAHigherBound)
	assert.Equal(t, 0.32, cfg.Properties.LiftCoefficientAoA0)
	assert.Equal(t, 100.0, cfg.StartingConfig.InitialThrottle)
	assert.Equal(t, []float64{100, 0}, cfg.StartingConfig.InitialVelocity)
	assert.Equal(t, 300.0, cfg.BulletConfig.Speed)
	assert.Equal(t, "assets/side.png", cfg.Sprite.SideViewDir)
}

func TestLoadAeroProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "i16_falangist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(planeYAML), 0644))

	p, err := LoadAeroProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "i16_falangist", p.Name)
	assert.Equal(t, 1200.0, p.Mass)
	assert.Equal(t, -15.0, p.CritLow.AngleDeg)
}

func TestLoadAeroProfileInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	bad := `
properties:
  mass: -1
  engine_force: 300
  agility: 100
  drag_constant: 0.6
  lift_constant: 100
  critical_aoa_lower_bound: [-15.0, -0.95]
  critical_aoa_higher_bound: [19.0, 1.4]
starting_config:
  initial_velocity: [100, 0]
  initial_position: [100, 300]
  size: [60, 30]
bullet_config:
  speed: 300
  lifetime: 500
  size: [10, 5]
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err := LoadAeroProfile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadPlaneConfigMissingFile(t *testing.T) {
	_, err := LoadPlaneConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plane_pos_scale: 2.0\nground:\n  height: 80\n"), 0644))

	cfg, err := LoadEnvConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1280, 720}, cfg.WindowDimensions)
	assert.Equal(t, 2.0, cfg.PlanePosScale)
	assert.Equal(t, 80.0, cfg.Ground.Height)
	assert.Equal(t, 0.0, cfg.Ground.CollisionElevation)
}

func TestLoadTargetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.yaml")
	yaml := "size: [50, 50]\nposition: [800, 500]\nposition_px_deviation: 50\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadTargetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 50}, cfg.Size)
	assert.Equal(t, []float64{800, 500}, cfg.Position)
	assert.Equal(t, 50.0, cfg.PositionPxDeviation)
}
