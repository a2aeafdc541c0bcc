package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the default doodle configuration.
// Values match the original game's constants.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		World: WorldConfig{
			Width:  500,
			Height: 700,
		},
		Physics: PhysicsConfig{
			Gravity:     0.2,
			JumpImpulse: -8.0,
			MoveStep:    5.0,
		},
		Player: PlayerConfig{
			SpawnX: 200,
			SpawnY: 200,
		},
		Platforms: PlatformsConfig{
			Count:  10,
			Width:  68,
			Height: 14,
		},
		Scroll: ScrollConfig{
			Threshold: 300,
		},
		Collision: CollisionConfig{
			FootOffset: 70,
			LeftInset:  50,
			RightInset: 20,
		},
	}
}
