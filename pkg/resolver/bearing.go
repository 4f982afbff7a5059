package resolver

import (
	"fmt"
	"math"

	"github.com/menta2k/vision-target/pkg/types"
)

// BearingDegrees returns the horizontal angle from the camera's optical
// axis to a point at the given x coordinate, using a pinhole camera model:
//
//	bearing = atan((centerX - frameWidth/2) / focalLength)
//
// The result is positive when the point is right of frame center and
// negative when left. A non-positive focal length is a configuration
// error and fails loudly instead of producing NaN or infinity.
func (r *Resolver) BearingDegrees(centerX float64) (float64, error) {
	if r.camera.FocalLength <= 0 {
		return 0, fmt.Errorf("%w: focal length must be positive, got %v",
			ErrInvalidConfig, r.camera.FocalLength)
	}
	radians := math.Atan((centerX - r.camera.FrameWidth/2) / r.camera.FocalLength)
	return radians * 180 / math.Pi, nil
}

// DistanceInches estimates the distance to a target from its apparent
// width in pixels, the physical width of the goal's tape pattern, and the
// camera's horizontal field of view:
//
//	distance = physicalWidth * frameWidth / (2 * measuredWidth * tan(fov/2))
//
// GoalUnknown has no physical width to scale by, so it is rejected as a
// configuration error rather than mapped to a sentinel distance.
func (r *Resolver) DistanceInches(goal types.GoalType, measuredWidth float64) (float64, error) {
	var physicalWidth float64
	switch goal {
	case types.GoalGear:
		physicalWidth = r.camera.GearTargetWidthInches
	case types.GoalHighGoal:
		physicalWidth = r.camera.HighGoalTargetWidthInches
	default:
		return 0, fmt.Errorf("%w: no physical width for goal type %q", ErrInvalidConfig, goal)
	}

	if physicalWidth <= 0 {
		return 0, fmt.Errorf("%w: physical width for goal type %q must be positive, got %v",
			ErrInvalidConfig, goal, physicalWidth)
	}
	if r.camera.HorizontalFOVDegrees <= 0 || r.camera.HorizontalFOVDegrees >= 180 {
		return 0, fmt.Errorf("%w: horizontal FOV must be in (0, 180) degrees, got %v",
			ErrInvalidConfig, r.camera.HorizontalFOVDegrees)
	}
	if measuredWidth <= 0 {
		return 0, fmt.Errorf("%w: measured width must be positive, got %v",
			ErrMalformedBox, measuredWidth)
	}

	halfFOV := r.camera.HorizontalFOVDegrees * math.Pi / 360
	return physicalWidth * r.camera.FrameWidth / (2 * measuredWidth * math.Tan(halfFOV)), nil
}
