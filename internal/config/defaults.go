package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:  400,
			Height: 600,
		},
		Bird: Bird{
			X:       50,
			Y:       300,
			Width:   20,
			Height:  20,
			Gravity: 0.3,
			Lift:    -8,
		},
		Pipes: Pipes{
			Width:         50,
			Gap:           200,
			Speed:         1,
			SpawnInterval: 230,
			MinMargin:     20,
		},
		Score: Score{
			Initial: 5,
		},
		Loop: Loop{
			TickRate: 60,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
