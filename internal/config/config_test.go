package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default resolution = %dx%d, want 1280x720", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Assets.DataDir != "data" {
		t.Errorf("default data dir = %q, want data", cfg.Assets.DataDir)
	}
	if cfg.Physics.Gravity != [3]float32{0, -9.8, 0} {
		t.Errorf("default gravity = %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.CollisionMargin != 0.04 {
		t.Errorf("default collision margin = %f, want 0.04", cfg.Physics.CollisionMargin)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `graphics:
  width: 1920
  height: 1080
physics:
  friction: 0.8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("resolution = %dx%d, want 1920x1080", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Physics.Friction != 0.8 {
		t.Errorf("friction = %f, want 0.8", cfg.Physics.Friction)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Values absent from the file keep defaults
	if cfg.Assets.DataDir != "data" {
		t.Errorf("data dir = %q, want default", cfg.Assets.DataDir)
	}
	if cfg.Physics.Restitution != 0.1 {
		t.Errorf("restitution = %f, want default 0.1", cfg.Physics.Restitution)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not, a, map]\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("loading malformed yaml should fail")
	}
}

func TestFindConfigFilePicksUpSaved(t *testing.T) {
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	if got := findConfigFile(); got != "" {
		t.Fatalf("findConfigFile in empty dir = %q, want none", got)
	}

	cfg := Default()
	if err := cfg.SaveTo(configFileName); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := findConfigFile(); got != "./"+configFileName {
		t.Errorf("findConfigFile = %q, want ./%s", got, configFileName)
	}
}

func TestSaveToRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Fullscreen = true
	cfg.Physics.Friction = 0.75
	cfg.Assets.TemplateDirs = []string{"data/objects", "extra/objects"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if !loaded.Graphics.Fullscreen {
		t.Error("fullscreen flag lost in roundtrip")
	}
	if loaded.Physics.Friction != 0.75 {
		t.Errorf("friction = %f after roundtrip", loaded.Physics.Friction)
	}
	if len(loaded.Assets.TemplateDirs) != 2 {
		t.Errorf("template dirs = %v", loaded.Assets.TemplateDirs)
	}
}
