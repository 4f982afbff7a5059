// Package resolver reduces noisy candidate bounding boxes from an upstream
// detector into a single classified vision target.
//
// The reduction runs four pure stages in sequence:
//
//  1. FilterLargest keeps the two largest candidate boxes.
//  2. Classify derives the goal type from the aggregate height/width
//     imbalance of the retained boxes.
//  3. Union computes the minimal rectangle enclosing the retained boxes.
//  4. Resolve derives the target center and the horizontal bearing angle
//     from the camera geometry.
//
// Every stage is stateless and referentially transparent: resolving the
// same candidate list against the same camera always yields the same
// Target. The resolver neither retains nor mutates the caller's slice.
package resolver

import (
	"errors"
	"fmt"

	"github.com/menta2k/vision-target/pkg/types"
)

// Sentinel errors returned (wrapped) by the resolver. Check with errors.Is.
var (
	// ErrMalformedBox marks a candidate box with negative width or height.
	ErrMalformedBox = errors.New("malformed bounding box")

	// ErrInvalidConfig marks unusable camera configuration, such as a zero
	// focal length or a missing physical target width.
	ErrInvalidConfig = errors.New("invalid camera configuration")
)

// CameraConfig holds the fixed camera geometry used to derive aiming data.
// It is supplied once at startup and treated as read-only afterwards.
type CameraConfig struct {
	// FrameWidth is the camera frame width in pixels.
	FrameWidth float64

	// FocalLength is the camera focal length in pixels, from calibration.
	FocalLength float64

	// HorizontalFOVDegrees is the camera's horizontal field of view.
	// Only used for distance estimation.
	HorizontalFOVDegrees float64

	// GearTargetWidthInches is the physical width of the gear peg tape
	// pair. Only used for distance estimation.
	GearTargetWidthInches float64

	// HighGoalTargetWidthInches is the physical width of the boiler tape
	// band. Only used for distance estimation.
	HighGoalTargetWidthInches float64
}

// DefaultCameraConfig returns the camera geometry for a 640x480 capture
// with a 60 degree horizontal field of view, and the 2017 field's target
// dimensions.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FrameWidth:                640,
		FocalLength:               554.26, // (640/2) / tan(30 deg)
		HorizontalFOVDegrees:      60,
		GearTargetWidthInches:     10.25,
		HighGoalTargetWidthInches: 15,
	}
}

// Validate checks that the configuration can produce meaningful bearings.
// The field-of-view and physical-width fields are validated lazily by
// DistanceInches, since bearing-only deployments leave them zero.
func (c CameraConfig) Validate() error {
	if c.FrameWidth <= 0 {
		return fmt.Errorf("%w: frame width must be positive, got %v", ErrInvalidConfig, c.FrameWidth)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("%w: focal length must be positive, got %v", ErrInvalidConfig, c.FocalLength)
	}
	return nil
}

// Resolver turns per-frame candidate box lists into Targets.
type Resolver struct {
	camera CameraConfig
}

// New creates a Resolver with the default camera configuration.
func New() *Resolver {
	return &Resolver{camera: DefaultCameraConfig()}
}

// NewWithConfig creates a Resolver with a custom camera configuration.
func NewWithConfig(camera CameraConfig) (*Resolver, error) {
	if err := camera.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{camera: camera}, nil
}

// Camera returns the camera configuration the resolver was built with.
func (r *Resolver) Camera() CameraConfig {
	return r.camera
}

// Resolve runs the full pipeline on one frame's candidate boxes.
//
// An empty candidate list is not an error: the returned Target has
// HasTarget == false and zero values everywhere else. A candidate with
// negative width or height is rejected with ErrMalformedBox before any
// geometry is computed.
func (r *Resolver) Resolve(candidates []types.Box) (types.Target, error) {
	for i, b := range candidates {
		if b.Width < 0 || b.Height < 0 {
			return types.Target{}, fmt.Errorf("candidate %d: %w: width=%v height=%v",
				i, ErrMalformedBox, b.Width, b.Height)
		}
	}

	retained := FilterLargest(candidates)
	goal := Classify(retained)

	union, ok := Union(retained)
	if !ok {
		return types.Target{Goal: goal}, nil
	}

	centerX, centerY := union.Center()
	bearing, err := r.BearingDegrees(centerX)
	if err != nil {
		return types.Target{}, err
	}

	return types.Target{
		Box:            union,
		Goal:           goal,
		CenterX:        centerX,
		CenterY:        centerY,
		BearingDegrees: bearing,
		HasTarget:      true,
	}, nil
}
