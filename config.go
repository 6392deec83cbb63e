package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// PlaneConfig mirrors the plane YAML schema. Value constraints are
// enforced by NewAeroProfile, not here; this layer only decodes shape.
type PlaneConfig struct {
	Sprite struct {
		SideViewDir string `mapstructure:"side_view_dir"`
		TopViewDir  string `mapstructure:"top_view_dir"`
	} `mapstructure:"sprite"`
	Properties struct {
		Mass                   float64   `mapstructure:"mass"`
		EngineForce            float64   `mapstructure:"engine_force"`
		Agility                float64   `mapstructure:"agility"`
		DragConstant           float64   `mapstructure:"drag_constant"`
		LiftConstant           float64   `mapstructure:"lift_constant"`
		CriticalAoALowerBound  []float64 `mapstructure:"critical_aoa_lower_bound"`
		CriticalAoAHigherBound []float64 `mapstructure:"critical_aoa_higher_bound"`
		LiftCoefficientAoA0    float64   `mapstructure:"lift_coefficient_aoa_0"`
		DragCoefficientAoA0    float64   `mapstructure:"drag_coefficient_aoa_0"`
	} `mapstructure:"properties"`
	StartingConfig struct {
		InitialThrottle     float64   `mapstructure:"initial_throttle"`
		InitialPitch        float64   `mapstructure:"initial_pitch"`
		InitialVelocity     []float64 `mapstructure:"initial_velocity"`
		InitialPosition     []float64 `mapstructure:"initial_position"`
		PositionPxDeviation float64   `mapstructure:"position_px_deviation"`
		Size                []float64 `mapstructure:"size"`
	} `mapstructure:"starting_config"`
	BulletConfig struct {
		Sprite   string    `mapstructure:"sprite"`
		Speed    float64   `mapstructure:"speed"`
		Lifetime float64   `mapstructure:"lifetime"`
		Size     []float64 `mapstructure:"size"`
	} `mapstructure:"bullet_config"`
}

// TargetConfig mirrors the target YAML schema
type TargetConfig struct {
	Sprite              string    `mapstructure:"sprite"`
	Size                []float64 `mapstructure:"size"`
	Position            []float64 `mapstructure:"position"`
	PositionPxDeviation float64   `mapstructure:"position_px_deviation"`
}

// EnvConfig mirrors the environment YAML schema
type EnvConfig struct {
	WindowDimensions []float64 `mapstructure:"window_dimensions"`
	PlanePosScale    float64   `mapstructure:"plane_pos_scale"`
	Ground           struct {
		Sprite             string  `mapstructure:"sprite"`
		Height             float64 `mapstructure:"height"`
		CollisionElevation float64 `mapstructure:"collision_elevation"`
	} `mapstructure:"ground"`
	Background struct {
		Sprite string `mapstructure:"sprite"`
	} `mapstructure:"background"`
}

func readYAML(path string, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

// LoadPlaneConfig reads one plane YAML file
func LoadPlaneConfig(path string) (PlaneConfig, error) {
	var cfg PlaneConfig
	err := readYAML(path, &cfg)
	return cfg, err
}

// LoadAeroProfile reads a plane YAML file and builds its profile. The
// type name is the file name without extension.
func LoadAeroProfile(path string) (*AeroProfile, error) {
	cfg, err := LoadPlaneConfig(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewAeroProfile(name, cfg)
}

// LoadTargetConfig reads a target YAML file
func LoadTargetConfig(path string) (TargetConfig, error) {
	var cfg TargetConfig
	err := readYAML(path, &cfg)
	return cfg, err
}

// LoadEnvConfig reads an environment YAML file, filling in the
// reference window/ground defaults for missing keys
func LoadEnvConfig(path string) (EnvConfig, error) {
	var cfg EnvConfig
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("window_dimensions", []float64{1280, 720})
	v.SetDefault("plane_pos_scale", 1.0)
	v.SetDefault("ground.height", 50)
	v.SetDefault("ground.collision_elevation", 0)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return cfg, nil
}
