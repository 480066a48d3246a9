// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Input    InputConfig    `yaml:"input"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Samples    int  `yaml:"samples"` // MSAA sample count for the offscreen target
	Gamma      bool `yaml:"gamma"`   // gamma correction on startup
}

// SceneConfig holds demo scene content settings.
type SceneConfig struct {
	SkyboxDir        string  `yaml:"skybox_dir"` // directory with right/left/top/bottom/front/back images
	ModelPath        string  `yaml:"model_path"` // optional OBJ model to place in the scene
	ShadowResolution int     `yaml:"shadow_resolution"`
	CubeCount        int     `yaml:"cube_count"`   // instanced cube field size
	FieldRadius      float32 `yaml:"field_radius"` // spread of the cube field
}

// InputConfig holds camera and controller settings.
type InputConfig struct {
	MouseSensitivity  float32 `yaml:"mouse_sensitivity"`
	ScrollSensitivity float32 `yaml:"scroll_sensitivity"`
	MoveSpeed         float32 `yaml:"move_speed"`
	InvertY           bool    `yaml:"invert_y"`
	PollIntervalMS    int     `yaml:"poll_interval_ms"` // minimum time between event polls
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
			Samples:    16,
			Gamma:      true,
		},
		Scene: SceneConfig{
			SkyboxDir:        "assets/skybox",
			ModelPath:        "",
			ShadowResolution: 2048,
			CubeCount:        64,
			FieldRadius:      12,
		},
		Input: InputConfig{
			MouseSensitivity:  0.1,
			ScrollSensitivity: 1.0,
			MoveSpeed:         4.0,
			InvertY:           false,
			PollIntervalMS:    2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
