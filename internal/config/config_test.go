package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Samples != 16 {
		t.Errorf("expected 16 MSAA samples, got %d", cfg.Graphics.Samples)
	}
	if !cfg.Graphics.Gamma {
		t.Error("expected gamma correction to be on by default")
	}

	// Test scene defaults
	if cfg.Scene.ShadowResolution != 2048 {
		t.Errorf("expected shadow resolution 2048, got %d", cfg.Scene.ShadowResolution)
	}
	if cfg.Scene.CubeCount != 64 {
		t.Errorf("expected cube count 64, got %d", cfg.Scene.CubeCount)
	}

	// Test input defaults
	if cfg.Input.MouseSensitivity != 0.1 {
		t.Errorf("expected mouse sensitivity 0.1, got %f", cfg.Input.MouseSensitivity)
	}
	if cfg.Input.MoveSpeed != 4.0 {
		t.Errorf("expected move speed 4.0, got %f", cfg.Input.MoveSpeed)
	}
	if cfg.Input.InvertY {
		t.Error("expected invert_y to be false by default")
	}
	if cfg.Input.PollIntervalMS != 2 {
		t.Errorf("expected poll interval 2ms, got %d", cfg.Input.PollIntervalMS)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  samples: 4
  gamma: false

scene:
  skybox_dir: "assets/night"
  model_path: "assets/crate.obj"
  shadow_resolution: 4096
  cube_count: 128

input:
  mouse_sensitivity: 0.25
  move_speed: 8.0
  invert_y: true
  poll_interval_ms: 5

logging:
  level: "debug"
  log_file: "glint.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Samples != 4 {
		t.Errorf("expected 4 MSAA samples, got %d", cfg.Graphics.Samples)
	}
	if cfg.Graphics.Gamma {
		t.Error("expected gamma to be false")
	}

	if cfg.Scene.SkyboxDir != "assets/night" {
		t.Errorf("expected skybox dir 'assets/night', got %s", cfg.Scene.SkyboxDir)
	}
	if cfg.Scene.ModelPath != "assets/crate.obj" {
		t.Errorf("expected model path 'assets/crate.obj', got %s", cfg.Scene.ModelPath)
	}
	if cfg.Scene.ShadowResolution != 4096 {
		t.Errorf("expected shadow resolution 4096, got %d", cfg.Scene.ShadowResolution)
	}

	if cfg.Input.MouseSensitivity != 0.25 {
		t.Errorf("expected mouse sensitivity 0.25, got %f", cfg.Input.MouseSensitivity)
	}
	if !cfg.Input.InvertY {
		t.Error("expected invert_y to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "glint.log" {
		t.Errorf("expected log file 'glint.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "model flag",
			setup: func() {
				*flagModel = "assets/backpack.obj"
			},
			verify: func(cfg *Config) {
				if cfg.Scene.ModelPath != "assets/backpack.obj" {
					t.Errorf("expected model path from flag, got %s", cfg.Scene.ModelPath)
				}
			},
			teardown: func() {
				*flagModel = ""
			},
		},
		{
			name: "samples flag",
			setup: func() {
				*flagSamples = 8
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Samples != 8 {
					t.Errorf("expected 8 samples from flag, got %d", cfg.Graphics.Samples)
				}
			},
			teardown: func() {
				*flagSamples = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
