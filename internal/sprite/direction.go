// Package sprite provides the movement state shared by every on-screen
// object: a compass heading, a fractional movement accumulator, render and
// collision rectangles, and named group membership through a registry.
// Actors embed a Mover and register with a Registry instead of inheriting
// from a sprite base class.
package sprite

// Direction constants for compass components and accumulator thresholds.
// Screen coordinates, so y grows downward and Up is negative.
const (
	Up    float64 = -1
	Down  float64 = 1
	Left  float64 = -1
	Right float64 = 1
)

// Compass is a heading vector. Components are kept in {-1, 0, 1}, where 0
// means no movement on that axis.
type Compass struct {
	X, Y float64
}

// Neg returns the opposite heading.
func (c Compass) Neg() Compass {
	return Compass{X: -c.X, Y: -c.Y}
}

// IsZero reports whether the compass points nowhere.
func (c Compass) IsZero() bool {
	return c.X == 0 && c.Y == 0
}
