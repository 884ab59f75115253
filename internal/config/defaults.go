package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Default returns the built-in configuration used when no config file is
// found and the embedded default cannot be parsed.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  64,
			Height: 22,
		},
		Paddle: PaddleConfig{
			Width: 9,
			Speed: 40.0,
		},
		Ball: BallConfig{
			MinSpeed: 18.0,
			MaxSpeed: 42.0,
			LaunchVX: 10.0,
			LaunchVY: -21.0,
		},
		Bounce: BounceConfig{
			MaxAngleDeg: 60.0,
			EdgeZone:    0.85,
			EdgeBoost:   1.2,
			BrickBoost:  1.04,
		},
		Bricks: BrickConfig{
			Rows:  4,
			Width: 6,
			Gap:   1,
			Top:   2,
		},
		Loop: LoopConfig{
			TickRate:        60,
			MaxFrameDeltaMS: 250,
		},
		Scores: ScoresConfig{
			Driver:      "json",
			Path:        "~/.termsite/scores.json",
			Cap:         100,
			Display:     10,
			NameMax:     12,
			DefaultName: "ANON",
		},
		Shell: ShellConfig{
			User:     "guest",
			Host:     "termsite",
			BootAnim: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
