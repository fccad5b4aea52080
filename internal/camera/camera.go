// Package camera produces the illusion of a scrolling world: each tick it
// applies the player's negated compass to every actor in the scrolled
// group, so the world drifts opposite to the player's heading while the
// player's own state is untouched.
package camera

import (
	"image"
	"sort"

	"chosenoffset.com/damselgrove/internal/sprite"
)

// Target is the actor the camera tracks, usually the player. It is never
// part of the scrolled group.
type Target interface {
	State() *sprite.Mover
	MoveSpeed() int
}

// Camera tracks the display dimensions and drives the inverse-motion pass
// over the scrolled group.
type Camera struct {
	// Offset is the world-to-screen translation applied at draw time as
	// position - offset. It starts at zero; the inversion pass is the
	// motion mechanism, not the offset.
	Offset image.Point

	halfWidth  int
	halfHeight int
	target     Target
	reg        *sprite.Registry
	group      string
}

// New creates a camera for a display of the given pixel dimensions.
func New(displayWidth, displayHeight int, target Target, reg *sprite.Registry, scrolledGroup string) *Camera {
	return &Camera{
		halfWidth:  displayWidth / 2,
		halfHeight: displayHeight / 2,
		target:     target,
		reg:        reg,
		group:      scrolledGroup,
	}
}

// Update applies one tick of inverse player motion to every actor in the
// scrolled group, in non-decreasing order of vertical center. The target's
// compass and position are not touched; each scrolled actor's own compass
// is preserved.
func (c *Camera) Update() {
	compass := c.target.State().Compass
	speed := c.target.MoveSpeed()

	for _, a := range c.ordered() {
		st := a.State()
		*st = applyInverseMotion(*st, compass, speed)
	}
}

// ordered returns the scrolled actors sorted by vertical center, so
// overlap is processed back to front.
func (c *Camera) ordered() []sprite.Actor {
	actors := c.reg.Members(c.group)
	sort.SliceStable(actors, func(i, j int) bool {
		return actors[i].State().CenterY() < actors[j].State().CenterY()
	})
	return actors
}

// ScreenPos translates an actor's render position into screen coordinates.
func (c *Camera) ScreenPos(m *sprite.Mover) (float64, float64) {
	return float64(m.Rect.Min.X - c.Offset.X), float64(m.Rect.Min.Y - c.Offset.Y)
}

// applyInverseMotion returns the mover state advanced one tick under the
// negated player compass. A pure function instead of the classic
// mutate-compass-then-restore trick: the input state is not modified and
// the returned state keeps the actor's own compass.
func applyInverseMotion(m sprite.Mover, playerCompass sprite.Compass, speed int) sprite.Mover {
	own := m.Compass
	m.Compass = playerCompass.Neg()
	m.Move(speed)
	m.Compass = own
	return m
}
