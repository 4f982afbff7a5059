package types

import (
	"encoding/json"
	"fmt"
)

// Box represents an axis-aligned bounding box in pixel coordinates.
// Upstream detectors emit sub-pixel contour bounds, so coordinates are
// float64 rather than int.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the area of the box in square pixels.
func (b Box) Area() float64 {
	return b.Width * b.Height
}

// Right returns the x coordinate of the box's right edge.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// GoalType is the semantic category of a vision target the robot can score on.
type GoalType int

const (
	// GoalUnknown means the candidate boxes gave no orientation signal.
	GoalUnknown GoalType = iota

	// GoalHighGoal is the boiler high goal, marked by horizontal tape rings.
	GoalHighGoal

	// GoalGear is the gear peg, marked by two vertical tape stripes.
	GoalGear
)

// String returns the goal type name.
func (g GoalType) String() string {
	switch g {
	case GoalHighGoal:
		return "high_goal"
	case GoalGear:
		return "gear"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the goal type as its string name.
func (g GoalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a goal type from its string name.
func (g *GoalType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "high_goal":
		*g = GoalHighGoal
	case "gear":
		*g = GoalGear
	case "unknown":
		*g = GoalUnknown
	default:
		return fmt.Errorf("unknown goal type %q", s)
	}
	return nil
}

// Target is the resolved vision goal for one camera frame: the union
// rectangle of the retained candidate boxes plus derived aiming data.
// A Target is a value recomputed each frame; it holds no state between
// frames.
type Target struct {
	// Box is the minimal rectangle enclosing the retained candidates.
	// Zero when HasTarget is false.
	Box Box `json:"box"`

	// Goal is the classified goal type.
	Goal GoalType `json:"goal"`

	// CenterX and CenterY are the center of Box in pixels.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// BearingDegrees is the horizontal angle from the camera's optical
	// axis to the target center. Positive means the target is right of
	// frame center.
	BearingDegrees float64 `json:"bearing_degrees"`

	// HasTarget reports whether any candidate boxes were supplied.
	// When false all other fields are zero values.
	HasTarget bool `json:"has_target"`
}
