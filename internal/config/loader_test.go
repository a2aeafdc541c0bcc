package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDoodleEmbeddedDefaults(t *testing.T) {
	// No custom path, no user config (HOME points at an empty dir) and no
	// local config in the working directory: the embedded defaults apply.
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDoodle("")
	if err != nil {
		t.Fatalf("LoadDoodle(\"\") failed: %v", err)
	}

	want := DefaultDoodleConfig()
	if cfg.Physics != want.Physics {
		t.Errorf("embedded physics = %+v, want %+v", cfg.Physics, want.Physics)
	}
	if cfg.World != want.World {
		t.Errorf("embedded world = %+v, want %+v", cfg.World, want.World)
	}
	if cfg.Collision != want.Collision {
		t.Errorf("embedded collision = %+v, want %+v", cfg.Collision, want.Collision)
	}
	if cfg.Platforms.Count != 10 {
		t.Errorf("platform count = %d, want 10", cfg.Platforms.Count)
	}
}

func TestLoadDoodleCustomPath(t *testing.T) {
	custom := `
world:
  width: 500
  height: 700
physics:
  gravity: 0.5
  jump_impulse: -12.0
  move_step: 7.0
platforms:
  count: 6
  width: 68
  height: 14
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDoodle(path)
	if err != nil {
		t.Fatalf("LoadDoodle(custom) failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %f, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != -12.0 {
		t.Errorf("impulse = %f, want -12.0", cfg.Physics.JumpImpulse)
	}
	if cfg.Platforms.Count != 6 {
		t.Errorf("count = %d, want 6", cfg.Platforms.Count)
	}
}

func TestLoadDoodleMissingCustomPath(t *testing.T) {
	_, err := LoadDoodle(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadDoodleMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDoodle(path)
	if err == nil {
		t.Fatal("expected error for malformed custom config")
	}
}
