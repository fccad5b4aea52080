// Package entity implements the moving actors of the game: the
// input-driven player and the wandering damsel. An entity composes a
// sprite.Mover with sheet-driven walking animation keyed by facing.
package entity

import (
	"fmt"

	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/sprite"
)

// Facing names the four walking animation strips.
type Facing string

const (
	FacingUp    Facing = "up"
	FacingDown  Facing = "down"
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// frameDivisor is the number of ticks each animation frame is held,
// decoupling animation rate from movement rate.
const frameDivisor = 10

// Entity is the shared state of a moving actor.
type Entity struct {
	Mover  sprite.Mover
	Handle sprite.Handle
	Speed  int

	reg       *sprite.Registry
	obstacles string // group the entity cannot walk through

	frames    map[Facing][]render.Image
	facing    Facing
	frame     int
	frameTick int
}

// WalkFrames loads the four directional walking strips from a sheet.
func WalkFrames(s *sheet.Sheet) (map[Facing][]render.Image, error) {
	frames := make(map[Facing][]render.Image)
	for _, f := range []Facing{FacingUp, FacingDown, FacingLeft, FacingRight} {
		strip, err := s.Strip(string(f))
		if err != nil {
			return nil, fmt.Errorf("walking strip %q: %w", f, err)
		}
		frames[f] = strip
	}
	return frames, nil
}

// newEntity places an entity at (x, y). The concrete actor embedding it
// registers itself afterwards, so the registry resolves handles to the
// outer type rather than to this inner state.
func newEntity(reg *sprite.Registry, frames map[Facing][]render.Image, x, y, speed int, obstacles string) (Entity, error) {
	first := frames[FacingDown]
	if len(first) == 0 {
		return Entity{}, fmt.Errorf("missing %q walking strip", FacingDown)
	}

	e := Entity{
		Speed:     speed,
		reg:       reg,
		obstacles: obstacles,
		frames:    frames,
		facing:    FacingDown,
	}
	e.Mover.SetTile(x, y, first[0].Bounds())
	// Slightly less tall hitbox than the visual frame.
	e.Mover.InsetHitbox(0, 10)
	return e, nil
}

// State returns the entity's movement state.
func (e *Entity) State() *sprite.Mover {
	return &e.Mover
}

// MoveSpeed returns the entity's speed in pixels per shift.
func (e *Entity) MoveSpeed() int {
	return e.Speed
}

// Facing returns the entity's current facing.
func (e *Entity) Facing() Facing {
	return e.facing
}

// SetFacingByCompass derives the facing from the compass. The horizontal
// component wins when both axes are set; a zero compass keeps the last
// facing so idle entities do not snap around.
func (e *Entity) SetFacingByCompass() {
	switch {
	case e.Mover.Compass.X < 0:
		e.facing = FacingLeft
	case e.Mover.Compass.X > 0:
		e.facing = FacingRight
	case e.Mover.Compass.Y < 0:
		e.facing = FacingUp
	case e.Mover.Compass.Y > 0:
		e.facing = FacingDown
	}
}

// Animate advances the frame counter and returns the frame for the
// current facing, looping over the strip.
func (e *Entity) Animate() render.Image {
	strip := e.frames[e.facing]
	if len(strip) == 0 {
		return nil
	}
	e.frameTick++
	if e.frameTick >= frameDivisor {
		e.frameTick = 0
		e.frame = (e.frame + 1) % len(strip)
	}
	if e.frame >= len(strip) {
		e.frame = 0
	}
	return strip[e.frame]
}

// Frame returns the current frame without advancing the animation.
func (e *Entity) Frame() render.Image {
	strip := e.frames[e.facing]
	if len(strip) == 0 {
		return nil
	}
	if e.frame >= len(strip) {
		return strip[0]
	}
	return strip[e.frame]
}

// Die removes the entity from every group it belongs to. Idempotent.
func (e *Entity) Die() {
	e.reg.Kill(e.Handle)
}

// Alive reports whether the entity is still registered.
func (e *Entity) Alive() bool {
	_, ok := e.reg.Get(e.Handle)
	return ok
}
