package sprite

import "image"

// Mover holds the movement state of an on-screen object: the compass
// heading, a per-axis fractional accumulator, the render rectangle and the
// collision hitbox. The hitbox center is kept equal to the render
// rectangle's center after every shift.
type Mover struct {
	Compass Compass
	Rect    image.Rectangle
	Hitbox  image.Rectangle

	// Fractional movement accumulated from the compass but not yet
	// converted into a shift.
	horizontal float64
	vertical   float64
}

// Move advances the accumulator by the current compass, then shifts at
// most once per axis: a shift of speed pixels fires when the accumulator
// crosses the up/left or down/right threshold, and the accumulator is
// relaxed back toward zero by the opposing unit. Both axes are evaluated
// every call, so a persistent diagonal compass produces diagonal motion.
func (m *Mover) Move(speed int) {
	m.horizontal += m.Compass.X
	m.vertical += m.Compass.Y

	if m.vertical <= Up {
		m.StepUp(speed)
		m.vertical += Down
	} else if m.vertical >= Down {
		m.StepDown(speed)
		m.vertical += Up
	}

	if m.horizontal <= Left {
		m.StepLeft(speed)
		m.horizontal += Right
	} else if m.horizontal >= Right {
		m.StepRight(speed)
		m.horizontal += Left
	}
}

// MoveLeft points the compass left and shifts immediately. Directional
// calls set one axis at a time: the other component is zeroed, so the most
// recent call wins and explicit diagonals are not composable. Diagonal
// motion comes from driving Move with a persistent two-axis compass.
func (m *Mover) MoveLeft(speed int) {
	m.Compass.X = Left
	m.Compass.Y = 0
	m.StepLeft(speed)
}

// MoveRight points the compass right and shifts immediately.
func (m *Mover) MoveRight(speed int) {
	m.Compass.X = Right
	m.Compass.Y = 0
	m.StepRight(speed)
}

// MoveUp points the compass up and shifts immediately.
func (m *Mover) MoveUp(speed int) {
	m.Compass.X = 0
	m.Compass.Y = Up
	m.StepUp(speed)
}

// MoveDown points the compass down and shifts immediately.
func (m *Mover) MoveDown(speed int) {
	m.Compass.X = 0
	m.Compass.Y = Down
	m.StepDown(speed)
}

// SetTile (re)initializes the render rectangle at (x, y) using the size of
// the given visual bounds and resets the hitbox to match it exactly, with
// no inflation. Used for static terrain tiles.
func (m *Mover) SetTile(x, y int, bounds image.Rectangle) {
	m.Rect = image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	m.Hitbox = m.Rect
}

// InsetHitbox derives the hitbox from the render rectangle shrunk by
// (dx, dy) pixels total, keeping the same center. Entities use this for a
// hitbox smaller than their visual frame.
func (m *Mover) InsetHitbox(dx, dy int) {
	m.Hitbox = image.Rect(
		m.Rect.Min.X+dx/2,
		m.Rect.Min.Y+dy/2,
		m.Rect.Max.X-dx/2,
		m.Rect.Max.Y-dy/2,
	)
}

// StepLeft shifts the render rectangle speed pixels left and re-centers
// the hitbox. No bounds or collision checking happens at this layer; that
// is the caller's collision hook's responsibility.
func (m *Mover) StepLeft(speed int) {
	m.Rect = m.Rect.Add(image.Pt(-speed, 0))
	m.centerHitbox()
}

// StepRight shifts the render rectangle speed pixels right and re-centers
// the hitbox.
func (m *Mover) StepRight(speed int) {
	m.Rect = m.Rect.Add(image.Pt(speed, 0))
	m.centerHitbox()
}

// StepUp shifts the render rectangle speed pixels up and re-centers the
// hitbox.
func (m *Mover) StepUp(speed int) {
	m.Rect = m.Rect.Add(image.Pt(0, -speed))
	m.centerHitbox()
}

// StepDown shifts the render rectangle speed pixels down and re-centers
// the hitbox.
func (m *Mover) StepDown(speed int) {
	m.Rect = m.Rect.Add(image.Pt(0, speed))
	m.centerHitbox()
}

// Accumulator returns the current horizontal and vertical accumulator
// values.
func (m *Mover) Accumulator() (horizontal, vertical float64) {
	return m.horizontal, m.vertical
}

// CenterY returns the vertical center of the render rectangle. The camera
// and the draw pass order actors by this value.
func (m *Mover) CenterY() int {
	return m.Rect.Min.Y + m.Rect.Dy()/2
}

func (m *Mover) centerHitbox() {
	rc := rectCenter(m.Rect)
	hc := rectCenter(m.Hitbox)
	m.Hitbox = m.Hitbox.Add(rc.Sub(hc))
}

func rectCenter(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}
