package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/menta2k/vision-target/pkg/resolver"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	if cfg.Camera.FrameWidth != 640 {
		t.Errorf("expected default frame width 640, got %v", cfg.Camera.FrameWidth)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Camera.FrameWidth = 320
	cfg.Camera.FocalLength = 160
	cfg.Overlay.Format = "webp"

	path := filepath.Join(t.TempDir(), "config.json")
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip changed config:\n before=%+v\n  after=%+v", cfg, loaded)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRejectsBadCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.FocalLength = 0

	if err := cfg.Validate(); !errors.Is(err, resolver.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero focal length, got %v", err)
	}
}

func TestValidateRejectsBadOverlay(t *testing.T) {
	cfg := Default()
	cfg.Overlay.Quality = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero overlay quality")
	}

	cfg = Default()
	cfg.Overlay.Format = "gif"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported overlay format")
	}
}

func TestCameraConfigConversion(t *testing.T) {
	cfg := Default()
	camera := cfg.CameraConfig()

	if camera.FrameWidth != cfg.Camera.FrameWidth {
		t.Errorf("frame width not carried over: %v vs %v", camera.FrameWidth, cfg.Camera.FrameWidth)
	}
	if camera.GearTargetWidthInches != cfg.Camera.GearTargetWidthInches {
		t.Errorf("gear width not carried over: %v vs %v", camera.GearTargetWidthInches, cfg.Camera.GearTargetWidthInches)
	}
}
