// Package config provides YAML-based game configuration loading for the
// doodle platform. Every gameplay constant of the simulation lives here so
// tests and players can tune them without touching the core.
package config

// DoodleConfig contains all configuration for the doodle jumper.
type DoodleConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Collision CollisionConfig `yaml:"collision"`
}

// WorldConfig defines the simulation space. The core always works in this
// fixed pixel space; the platform layer scales it to the terminal.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity assigned on bounce (negative = up)
	MoveStep    float64 `yaml:"move_step"`    // Horizontal translation per held key per tick
}

// PlayerConfig defines the player spawn point.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// PlatformsConfig defines the platform pool. The pool size is fixed for
// the lifetime of a session; off-screen platforms are recycled, never
// removed or added.
type PlatformsConfig struct {
	Count  int     `yaml:"count"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScrollConfig defines the scroll-up rule.
type ScrollConfig struct {
	Threshold float64 `yaml:"threshold"` // Player y above which the world shifts
}

// CollisionConfig defines the bounce hitbox. The test reproduced from the
// original is
//
//	player.x+LeftInset  > platform.x        &&
//	player.x+RightInset < platform.x+width  &&
//	player.y+FootOffset > platform.y        &&
//	player.y+FootOffset < platform.y+height &&
//	velocityY > 0
//
// The asymmetric insets make the effective hitbox narrower than the
// sprite. They are configurable so a corrected hitbox is a YAML edit,
// but the defaults match the original exactly.
type CollisionConfig struct {
	FootOffset float64 `yaml:"foot_offset"`
	LeftInset  float64 `yaml:"left_inset"`
	RightInset float64 `yaml:"right_inset"`
}
