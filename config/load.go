package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML overlay layout. Sections that are absent keep
// their current values.
type fileConfig struct {
	Game     *Config        `yaml:"game"`
	Player   PlayerConfig   `yaml:"player"`
	Enemy    EnemyConfig    `yaml:"enemy"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Waypoint WaypointConfig `yaml:"waypoint"`
	Camera   CameraConfig   `yaml:"camera"`
	Effects  EffectsConfig  `yaml:"effects"`
	Laser    LaserConfig    `yaml:"laser"`
	Sim      SimConfig      `yaml:"sim"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data)
}

// Load overlays YAML data onto the current configuration. On error the
// configuration is left untouched.
func Load(data []byte) error {
	game := *C
	f := fileConfig{
		Game:     &game,
		Player:   Player,
		Enemy:    Enemy,
		Physics:  Physics,
		Waypoint: Waypoint,
		Camera:   Camera,
		Effects:  Effects,
		Laser:    Laser,
		Sim:      Sim,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	C = f.Game
	Player = f.Player
	Enemy = f.Enemy
	Physics = f.Physics
	Waypoint = f.Waypoint
	Camera = f.Camera
	Effects = f.Effects
	Laser = f.Laser
	Sim = f.Sim
	return nil
}

// UnmarshalYAML accepts either a style name or its numeric value.
func (s *CameraStyle) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("camera style: expected scalar, got kind %d", value.Kind)
	}
	if style, ok := cameraStyleNames[strings.ToLower(value.Value)]; ok {
		*s = style
		return nil
	}
	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("camera style: unknown value %q", value.Value)
	}
	*s = CameraStyle(n)
	return nil
}
