package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Engine  EngineConfig  `yaml:"engine"`
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
}

// WindowConfig contains windowing configuration
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// EngineConfig contains engine loop configuration
type EngineConfig struct {
	TickRate        float64 `yaml:"tick_rate"`
	RenderFPSLimit  float64 `yaml:"render_fps_limit"` // 0 = uncapped
	Profiling       bool    `yaml:"profiling"`
	ProfileInterval float64 `yaml:"profile_interval"` // seconds between profiler log lines
}

// WorldConfig contains spherical world geometry configuration
type WorldConfig struct {
	Radius    float64 `yaml:"radius"`
	Gravity   float64 `yaml:"gravity"`
	ChunkSize float64 `yaml:"chunk_size"`
}

// TerrainConfig contains procedural terrain configuration
type TerrainConfig struct {
	Seed      int64   `yaml:"seed"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Octaves   int     `yaml:"octaves"`
}

// PlayerConfig contains avatar locomotion configuration
type PlayerConfig struct {
	WalkSpeed              float64 `yaml:"walk_speed"`
	RunSpeed               float64 `yaml:"run_speed"`
	JumpImpulse            float64 `yaml:"jump_impulse"`
	Height                 float64 `yaml:"height"`
	FirstPersonSensitivity float64 `yaml:"first_person_sensitivity"`
	ThirdPersonSensitivity float64 `yaml:"third_person_sensitivity"`
}

// CameraConfig contains camera and view transition configuration
type CameraConfig struct {
	FovDegrees        float64 `yaml:"fov_degrees"`
	Near              float64 `yaml:"near"`
	Far               float64 `yaml:"far"`
	Distance          float64 `yaml:"distance"`
	MinDistance       float64 `yaml:"min_distance"`
	MaxDistance       float64 `yaml:"max_distance"`
	TransitionSeconds float64 `yaml:"transition_seconds"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Fillstellar",
		},
		Engine: EngineConfig{
			TickRate:        60,
			RenderFPSLimit:  0,
			Profiling:       false,
			ProfileInterval: 5,
		},
		World: WorldConfig{
			Radius:    200,
			Gravity:   9.8,
			ChunkSize: 16,
		},
		Terrain: TerrainConfig{
			Seed:      1,
			Amplitude: 3.0,
			Frequency: 6.0,
			Octaves:   4,
		},
		Player: PlayerConfig{
			WalkSpeed:              4.3,
			RunSpeed:               8.6,
			JumpImpulse:            6.0,
			Height:                 1.7,
			FirstPersonSensitivity: 0.002,
			ThirdPersonSensitivity: 0.005,
		},
		Camera: CameraConfig{
			FovDegrees:        60,
			Near:              0.1,
			Far:               1000,
			Distance:          8,
			MinDistance:       3,
			MaxDistance:       20,
			TransitionSeconds: 0.6,
		},
	}
}

// LoadConfig loads the configuration from a file.
// Missing files are not an error; defaults are returned alongside the error
// so the caller can decide whether to care.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
