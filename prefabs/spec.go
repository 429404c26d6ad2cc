package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/confetti/common"
	"github.com/milk9111/confetti/emitter"
	"github.com/milk9111/confetti/physics"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PositionSpec struct {
	Top  float64 `yaml:"top"`
	Left float64 `yaml:"left"`
}

// GeyserSpec is the on-disk form of an emitter.Config.
type GeyserSpec struct {
	Name            string       `yaml:"name"`
	Position        PositionSpec `yaml:"position"`
	Angle           float64      `yaml:"angle"`
	Spread          float64      `yaml:"spread"`
	Velocity        float64      `yaml:"velocity"`
	Volatility      float64      `yaml:"volatility"`
	AngularVelocity float64      `yaml:"angular_velocity"`
	Concentration   float64      `yaml:"concentration"`
	DurationMs      int64        `yaml:"duration_ms"`
	Collisions      bool         `yaml:"collisions"`
	AirFriction     float64      `yaml:"air_friction,omitempty"`
	// Sprites left out of the file fall back to common.DefaultSprites; an
	// explicit empty list is kept so validation can reject it.
	Sprites []string `yaml:"sprites,omitempty"`
}

func LoadGeyserSpec(name string) (*GeyserSpec, error) {
	spec, err := LoadSpec[GeyserSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec into an emitter config. It does not validate.
func (s *GeyserSpec) Config() emitter.Config {
	sprites := s.Sprites
	if sprites == nil {
		sprites = common.DefaultSprites
	}
	return emitter.Config{
		Position:          emitter.Position{Top: s.Position.Top, Left: s.Position.Left},
		Angle:             s.Angle,
		Spread:            s.Spread,
		Velocity:          s.Velocity,
		Volatility:        s.Volatility,
		AngularVelocity:   s.AngularVelocity,
		Concentration:     s.Concentration,
		Duration:          time.Duration(s.DurationMs) * time.Millisecond,
		Sprites:           append([]string(nil), sprites...),
		CollisionsEnabled: s.Collisions,
		AirFriction:       s.AirFriction,
	}
}

// GeyserSpecFromConfig is the inverse of GeyserSpec.Config.
func GeyserSpecFromConfig(name string, c emitter.Config) *GeyserSpec {
	return &GeyserSpec{
		Name:            name,
		Position:        PositionSpec{Top: c.Position.Top, Left: c.Position.Left},
		Angle:           c.Angle,
		Spread:          c.Spread,
		Velocity:        c.Velocity,
		Volatility:      c.Volatility,
		AngularVelocity: c.AngularVelocity,
		Concentration:   c.Concentration,
		DurationMs:      c.Duration.Milliseconds(),
		Collisions:      c.CollisionsEnabled,
		AirFriction:     c.AirFriction,
		Sprites:         append([]string(nil), c.Sprites...),
	}
}

func MarshalGeyserSpec(s *GeyserSpec) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal geyser %s: %w", s.Name, err)
	}
	return data, nil
}

type WorldSpec struct {
	Name      string  `yaml:"name"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gravity   float64 `yaml:"gravity"`
	Floor     bool    `yaml:"floor"`
	Walls     bool    `yaml:"walls"`
	MaxBodies int     `yaml:"max_bodies"`
}

func LoadWorldSpec(name string) (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config fills in the base resolution for a zero size.
func (s *WorldSpec) Config() physics.WorldConfig {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = common.BaseWidth
	}
	if h <= 0 {
		h = common.BaseHeight
	}
	return physics.WorldConfig{
		Width:     w,
		Height:    h,
		Gravity:   s.Gravity,
		Floor:     s.Floor,
		Walls:     s.Walls,
		MaxBodies: s.MaxBodies,
	}
}
