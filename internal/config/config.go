// Package config provides YAML-based configuration loading and validation for
// the flappy simulation.
package config

// FlappyConfig contains all configuration for the game.
// Lengths are world units; the frontends scale them to cells or pixels.
type FlappyConfig struct {
	World World `yaml:"world"`
	Bird  Bird  `yaml:"bird"`
	Pipes Pipes `yaml:"pipes"`
	Score Score `yaml:"score"`
	Loop  Loop  `yaml:"loop"`

	// Source records where the configuration was loaded from.
	Source string `yaml:"-"`
}

// World defines the playfield extent.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bird defines the player body and its physics constants.
type Bird struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"` // Starting (and restart) position
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // Added to velocity every tick
	Lift    float64 `yaml:"lift"`    // Velocity set on flap (negative = up)
}

// Pipes defines obstacle geometry and cadence.
type Pipes struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`          // World units per tick
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	MinMargin     float64 `yaml:"min_margin"`     // Minimum arm length
}

// Score defines the score counter.
type Score struct {
	Initial int `yaml:"initial"`
}

// Loop defines the frame cadence of the frontends.
type Loop struct {
	TickRate int `yaml:"tick_rate"`
}
