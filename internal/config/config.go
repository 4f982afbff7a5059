package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/menta2k/vision-target/pkg/resolver"
)

// Config holds the application configuration
type Config struct {
	Camera  CameraConfig  `json:"camera"`
	Overlay OverlayConfig `json:"overlay"`
	Output  OutputConfig  `json:"output"`
}

// CameraConfig holds the camera geometry and target dimensions
type CameraConfig struct {
	FrameWidth                float64 `json:"frame_width"`
	FocalLength               float64 `json:"focal_length"`
	HorizontalFOVDegrees      float64 `json:"horizontal_fov_degrees"`
	GearTargetWidthInches     float64 `json:"gear_target_width_inches"`
	HighGoalTargetWidthInches float64 `json:"high_goal_target_width_inches"`
}

// OverlayConfig holds configuration for debug overlay rendering
type OverlayConfig struct {
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Dir         string `json:"dir"`
	TargetsFile string `json:"targets_file"`
}

// Default returns a configuration with default values
func Default() *Config {
	camera := resolver.DefaultCameraConfig()
	return &Config{
		Camera: CameraConfig{
			FrameWidth:                camera.FrameWidth,
			FocalLength:               camera.FocalLength,
			HorizontalFOVDegrees:      camera.HorizontalFOVDegrees,
			GearTargetWidthInches:     camera.GearTargetWidthInches,
			HighGoalTargetWidthInches: camera.HighGoalTargetWidthInches,
		},
		Overlay: OverlayConfig{
			Format:   "png",
			Quality:  92,
			Lossless: false,
		},
		Output: OutputConfig{
			Dir:         "./out",
			TargetsFile: "targets.json",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CameraConfig converts the camera section to the resolver's config type
func (c *Config) CameraConfig() resolver.CameraConfig {
	return resolver.CameraConfig{
		FrameWidth:                c.Camera.FrameWidth,
		FocalLength:               c.Camera.FocalLength,
		HorizontalFOVDegrees:      c.Camera.HorizontalFOVDegrees,
		GearTargetWidthInches:     c.Camera.GearTargetWidthInches,
		HighGoalTargetWidthInches: c.Camera.HighGoalTargetWidthInches,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.CameraConfig().Validate(); err != nil {
		return err
	}

	if c.Overlay.Quality < 1 || c.Overlay.Quality > 100 {
		return fmt.Errorf("overlay.quality must be between 1 and 100")
	}

	switch c.Overlay.Format {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("overlay.format must be one of jpg, png, webp")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir cannot be empty")
	}

	if c.Output.TargetsFile == "" {
		return fmt.Errorf("output.targets_file cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "vision-target", "config.json")
}
