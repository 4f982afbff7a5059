// Package visiontarget reduces candidate bounding boxes from a camera
// frame into a single classified vision target.
//
// An upstream detector (thresholding + contour extraction, outside this
// module) hands over a list of candidate boxes per frame. This package
// keeps the two largest, classifies the goal type from their orientation,
// computes the enclosing union rectangle, and derives the aiming center
// and horizontal bearing from the camera geometry.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		visiontarget "github.com/menta2k/vision-target"
//		"github.com/menta2k/vision-target/pkg/types"
//	)
//
//	func main() {
//		vt := visiontarget.New()
//
//		candidates := []types.Box{
//			{X: 120, Y: 80, Width: 10, Height: 40},
//			{X: 150, Y: 80, Width: 10, Height: 40},
//		}
//
//		target, err := vt.Resolve(candidates)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if target.HasTarget {
//			fmt.Printf("goal=%s bearing=%.2f deg\n", target.Goal, target.BearingDegrees)
//		}
//	}
//
// The package consists of three components:
//
// 1. Resolver (pkg/resolver): the pure Filter/Classify/Union/Derive pipeline
// 2. Types (pkg/types): the Box, GoalType and Target value types
// 3. Overlay (pkg/overlay): debug overlay rendering and snapshot image I/O
//
// The resolver is stateless: each call works on an immutable snapshot of
// the candidate list and produces a fresh Target, so a single frame loop
// can call it concurrently with downstream consumers of earlier results.
package visiontarget

import (
	"image"

	"github.com/menta2k/vision-target/pkg/overlay"
	"github.com/menta2k/vision-target/pkg/resolver"
	"github.com/menta2k/vision-target/pkg/types"
)

// Version of the vision target library
const Version = "1.0.0"

// TargetResolver provides a high-level interface for target resolution
// and debug rendering
type TargetResolver struct {
	resolver *resolver.Resolver
	renderer *overlay.Renderer
}

// New creates a TargetResolver with the default camera configuration
func New() *TargetResolver {
	return &TargetResolver{
		resolver: resolver.New(),
		renderer: overlay.NewRenderer(),
	}
}

// NewWithConfig creates a TargetResolver with a custom camera configuration
func NewWithConfig(camera resolver.CameraConfig) (*TargetResolver, error) {
	r, err := resolver.NewWithConfig(camera)
	if err != nil {
		return nil, err
	}
	return &TargetResolver{
		resolver: r,
		renderer: overlay.NewRenderer(),
	}, nil
}

// Resolve reduces one frame's candidate boxes to a Target
func (t *TargetResolver) Resolve(candidates []types.Box) (types.Target, error) {
	return t.resolver.Resolve(candidates)
}

// BearingDegrees returns the horizontal bearing to an x coordinate
func (t *TargetResolver) BearingDegrees(centerX float64) (float64, error) {
	return t.resolver.BearingDegrees(centerX)
}

// DistanceInches estimates the distance to a target from its apparent width
func (t *TargetResolver) DistanceInches(goal types.GoalType, measuredWidth float64) (float64, error) {
	return t.resolver.DistanceInches(goal, measuredWidth)
}

// Camera returns the camera configuration in use
func (t *TargetResolver) Camera() resolver.CameraConfig {
	return t.resolver.Camera()
}

// LoadImage loads a camera snapshot from file
func (t *TargetResolver) LoadImage(path string) (image.Image, error) {
	return t.renderer.LoadImage(path)
}

// SaveImage saves an image to file
func (t *TargetResolver) SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	return t.renderer.SaveImage(img, path, format, quality, lossless)
}

// CreateOverlay renders candidates and the resolved target onto a snapshot
func (t *TargetResolver) CreateOverlay(img image.Image, candidates []types.Box, target types.Target) image.Image {
	return t.renderer.CreateOverlay(img, candidates, target)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
