// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AssetsConfig holds asset discovery paths.
type AssetsConfig struct {
	DataDir      string   `yaml:"data_dir"`      // Root directory for asset files
	TemplateDirs []string `yaml:"template_dirs"` // Directories scanned for object templates
}

// PhysicsConfig holds static collision scene settings.
type PhysicsConfig struct {
	Gravity         [3]float32 `yaml:"gravity"`
	Friction        float32    `yaml:"friction"`
	Restitution     float32    `yaml:"restitution"`
	CollisionMargin float32    `yaml:"collision_margin"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Assets: AssetsConfig{
			DataDir:      "data",
			TemplateDirs: []string{"data/objects"},
		},
		Physics: PhysicsConfig{
			Gravity:         [3]float32{0, -9.8, 0},
			Friction:        0.5,
			Restitution:     0.1,
			CollisionMargin: 0.04,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
