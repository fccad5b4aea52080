package entity

import (
	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/sprite"
)

// Player is the input-driven actor. Held keys set the compass each tick,
// so holding keys on both axes produces diagonal movement through Move's
// persistent compass.
type Player struct {
	Entity

	input render.InputManager
}

// NewPlayer creates the player at (x, y) from its walking sheet, registers
// it and joins it to the given groups. The player is never added to the
// camera's scrolled group.
func NewPlayer(reg *sprite.Registry, s *sheet.Sheet, x, y, speed int, input render.InputManager, obstacles string, groups ...string) (*Player, error) {
	frames, err := WalkFrames(s)
	if err != nil {
		return nil, err
	}

	e, err := newEntity(reg, frames, x, y, speed, obstacles)
	if err != nil {
		return nil, err
	}

	p := &Player{Entity: e, input: input}
	p.Handle = reg.Add(p, groups...)
	return p, nil
}

// Update reads input into the compass, animates and moves, then resolves
// any obstacle overlap.
func (p *Player) Update() {
	p.readInput()
	p.SetFacingByCompass()
	p.Animate()
	p.Mover.Move(p.Speed)
	p.resolveCollisions()
}

func (p *Player) readInput() {
	var c sprite.Compass

	switch {
	case p.held(render.KeyA, render.KeyLeft):
		c.X = sprite.Left
	case p.held(render.KeyD, render.KeyRight):
		c.X = sprite.Right
	}

	switch {
	case p.held(render.KeyW, render.KeyUp):
		c.Y = sprite.Up
	case p.held(render.KeyS, render.KeyDown):
		c.Y = sprite.Down
	}

	p.Mover.Compass = c
}

func (p *Player) held(keys ...render.Key) bool {
	for _, k := range keys {
		if p.input.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// resolveCollisions pushes the player's hitbox out of any obstacle it
// overlaps, along the axis of least penetration.
func (p *Player) resolveCollisions() {
	for _, a := range p.reg.Members(p.obstacles) {
		o := a.State().Hitbox
		overlap := p.Mover.Hitbox.Intersect(o)
		if overlap.Empty() {
			continue
		}

		if overlap.Dx() <= overlap.Dy() {
			if p.Mover.Hitbox.Min.X < o.Min.X {
				p.Mover.StepLeft(overlap.Dx())
			} else {
				p.Mover.StepRight(overlap.Dx())
			}
		} else {
			if p.Mover.Hitbox.Min.Y < o.Min.Y {
				p.Mover.StepUp(overlap.Dy())
			} else {
				p.Mover.StepDown(overlap.Dy())
			}
		}
	}
}
