package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"racecore/internal/car"
	"racecore/internal/world"
)

const (
	DefaultDt       = 0.016
	DefaultDuration = 30.0
	DefaultKp       = 10.0
	DefaultKi       = 0.1
	DefaultKd       = 1.0
	DefaultTarget   = 60.0
)

type Config struct {
	Driver     string           `yaml:"driver"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	World      WorldConfig      `yaml:"world"`
	Car        CarConfig        `yaml:"car"`
	Controller ControllerConfig `yaml:"controller"`
}

type WorldConfig struct {
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	MinZ          float64 `yaml:"min_z"`
	MaxZ          float64 `yaml:"max_z"`
	MetersPerUnit float64 `yaml:"meters_per_unit"`
}

type CarConfig struct {
	Mass            float64 `yaml:"mass"`
	MomentOfInertia float64 `yaml:"moment_of_inertia"`
	Power           float64 `yaml:"power"`
	TurningImpulse  float64 `yaml:"turning_impulse"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Restitution     float64 `yaml:"restitution"`
	LinearDamping   float64 `yaml:"linear_damping"`
	AngularDamping  float64 `yaml:"angular_damping"`
}

type ControllerConfig struct {
	Kp     float64 `yaml:"kp"`
	Ki     float64 `yaml:"ki"`
	Kd     float64 `yaml:"kd"`
	Target float64 `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Driver:   "none",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		World: WorldConfig{
			MinX: 0, MaxX: 4000,
			MinY: 0, MaxY: 3000,
			MinZ: 0, MaxZ: 100,
			MetersPerUnit: 0.05,
		},
		Car: CarConfig{
			Mass:           car.DefaultMass,
			Power:          car.DefaultPower,
			TurningImpulse: car.DefaultTurningImpulse,
			MaxSpeed:       car.DefaultMaxSpeed,
			Restitution:    car.DefaultRestitution,
		},
		Controller: ControllerConfig{
			Kp:     DefaultKp,
			Ki:     DefaultKi,
			Kd:     DefaultKd,
			Target: DefaultTarget,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CarParams converts the car section into constructor parameters.
func (c *Config) CarParams() car.Params {
	return car.Params{
		Mass:            c.Car.Mass,
		MomentOfInertia: c.Car.MomentOfInertia,
		Power:           c.Car.Power,
		TurningImpulse:  c.Car.TurningImpulse,
		MaxSpeed:        c.Car.MaxSpeed,
		Restitution:     c.Car.Restitution,
		LinearDamping:   c.Car.LinearDamping,
		AngularDamping:  c.Car.AngularDamping,
	}
}

// Dimensions converts the world section into world bounds.
func (c *Config) Dimensions() world.Dimensions {
	return world.Dimensions{
		MinX: c.World.MinX, MaxX: c.World.MaxX,
		MinY: c.World.MinY, MaxY: c.World.MaxY,
		MinZ: c.World.MinZ, MaxZ: c.World.MaxZ,
		MetersPerUnit: c.World.MetersPerUnit,
	}
}

// RunConfig converts the timing fields into world run parameters.
func (c *Config) RunConfig() world.Config {
	return world.Config{Dt: c.Dt, Duration: c.Duration}
}
