package entity

import (
	"chosenoffset.com/damselgrove/internal/dice"
	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/sprite"
)

const (
	damselSpeed = 1

	// Wander timers are rolled in seconds and converted to ticks.
	ticksPerSecond  = 60
	wanderRollExpr  = "1d4"
	headingRollExpr = "1d5"
)

// Damsel is an NPC that wanders the map waiting to be rescued.
type Damsel struct {
	Entity

	roller      *dice.Roller
	wanderTicks int

	// Group names stored each tick for behavior decisions.
	enemies    string
	friendlies string
}

// NewDamsel creates a damsel at (x, y) from its walking sheet, registers
// it and joins it to the given groups. obstacles names the group of
// sprites the damsel cannot pass through.
func NewDamsel(reg *sprite.Registry, s *sheet.Sheet, x, y int, roller *dice.Roller, obstacles string, groups ...string) (*Damsel, error) {
	frames, err := WalkFrames(s)
	if err != nil {
		return nil, err
	}

	e, err := newEntity(reg, frames, x, y, damselSpeed, obstacles)
	if err != nil {
		return nil, err
	}

	d := &Damsel{Entity: e, roller: roller}
	d.Handle = reg.Add(d, groups...)
	return d, nil
}

// Update is the per-tick behavior entry point. The current enemy and
// friendly group names are stored for behavior decisions, then the damsel
// wanders, animates and moves with its current compass.
func (d *Damsel) Update(enemyGroup, friendlyGroup string) {
	d.enemies = enemyGroup
	d.friendlies = friendlyGroup

	d.wander()
	d.SetFacingByCompass()
	d.Animate()
	d.Mover.Move(d.Speed)
	d.resolveCollisions()
}

// wander re-rolls the compass when the timer runs out. Standing still is
// one of the choices.
func (d *Damsel) wander() {
	if d.wanderTicks > 0 {
		d.wanderTicks--
		return
	}

	headings := []sprite.Compass{
		{},
		{X: sprite.Left},
		{X: sprite.Right},
		{Y: sprite.Up},
		{Y: sprite.Down},
	}
	d.Mover.Compass = headings[d.roll(headingRollExpr, 1)-1]
	d.wanderTicks = d.roll(wanderRollExpr, 2) * ticksPerSecond
}

// resolveCollisions is the obstacle-resolution hook. The damsel does not
// resolve overlap yet; it always succeeds.
func (d *Damsel) resolveCollisions() {
}

func (d *Damsel) roll(expr string, fallback int) int {
	n, err := d.roller.Roll(expr)
	if err != nil {
		return fallback
	}
	return n
}
