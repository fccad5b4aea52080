package entity

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"chosenoffset.com/damselgrove/internal/dice"
	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sprite"
)

// fakeImage is a minimal render.Image for tests that never draw.
type fakeImage struct {
	rect image.Rectangle
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int)        { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{rect: r}
}
func (f *fakeImage) Fill(clr color.Color)                                   {}
func (f *fakeImage) Clear()                                                 {}
func (f *fakeImage) DrawImage(src render.Image, o *render.DrawImageOptions) {}
func (f *fakeImage) Dispose()                                               {}

// fakeInput reports a fixed set of held keys.
type fakeInput struct {
	held map[render.Key]bool
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.held[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return false }

func testFrames(n int) map[Facing][]render.Image {
	frames := make(map[Facing][]render.Image)
	for _, facing := range []Facing{FacingUp, FacingDown, FacingLeft, FacingRight} {
		strip := make([]render.Image, n)
		for i := range strip {
			strip[i] = &fakeImage{rect: image.Rect(0, 0, 16, 20)}
		}
		frames[facing] = strip
	}
	return frames
}

func testDamsel(t *testing.T, reg *sprite.Registry, x, y int, groups ...string) *Damsel {
	t.Helper()
	e, err := newEntity(reg, testFrames(3), x, y, damselSpeed, "obstacles")
	if err != nil {
		t.Fatalf("newEntity failed: %v", err)
	}
	d := &Damsel{Entity: e, roller: dice.NewRoller(rand.New(rand.NewSource(1)))}
	d.Handle = reg.Add(d, groups...)
	return d
}

func TestAnimateAdvancesAtDivisor(t *testing.T) {
	reg := sprite.NewRegistry()
	e, err := newEntity(reg, testFrames(3), 0, 0, 1, "obstacles")
	if err != nil {
		t.Fatalf("newEntity failed: %v", err)
	}

	// The frame holds until the divisor is reached, then advances.
	for i := 0; i < frameDivisor-1; i++ {
		e.Animate()
		if e.frame != 0 {
			t.Fatalf("Frame advanced after %d ticks, expected hold until %d", i+1, frameDivisor)
		}
	}
	e.Animate()
	if e.frame != 1 {
		t.Errorf("Expected frame 1 after %d ticks, got %d", frameDivisor, e.frame)
	}

	// The strip loops back to frame 0.
	for i := 0; i < 2*frameDivisor; i++ {
		e.Animate()
	}
	if e.frame != 0 {
		t.Errorf("Expected strip to loop back to frame 0, got %d", e.frame)
	}
}

func TestSetFacingByCompass(t *testing.T) {
	reg := sprite.NewRegistry()
	e, err := newEntity(reg, testFrames(3), 0, 0, 1, "obstacles")
	if err != nil {
		t.Fatalf("newEntity failed: %v", err)
	}

	cases := []struct {
		compass sprite.Compass
		want    Facing
	}{
		{sprite.Compass{X: sprite.Left}, FacingLeft},
		{sprite.Compass{X: sprite.Right}, FacingRight},
		{sprite.Compass{Y: sprite.Up}, FacingUp},
		{sprite.Compass{Y: sprite.Down}, FacingDown},
		// Horizontal wins on diagonals.
		{sprite.Compass{X: sprite.Left, Y: sprite.Down}, FacingLeft},
	}

	for _, tc := range cases {
		e.Mover.Compass = tc.compass
		e.SetFacingByCompass()
		if e.Facing() != tc.want {
			t.Errorf("Compass %v: expected facing %q, got %q", tc.compass, tc.want, e.Facing())
		}
	}

	// A zero compass keeps the last facing.
	e.Mover.Compass = sprite.Compass{}
	e.SetFacingByCompass()
	if e.Facing() != FacingLeft {
		t.Errorf("Expected idle entity to keep facing %q, got %q", FacingLeft, e.Facing())
	}
}

func TestDieRemovesFromAllGroups(t *testing.T) {
	reg := sprite.NewRegistry()
	d := testDamsel(t, reg, 0, 0, "visible", "damsels", "friendlies")

	d.Die()

	for _, g := range []string{"visible", "damsels", "friendlies"} {
		if reg.Contains(g, d.Handle) {
			t.Errorf("Expected damsel absent from %q after Die", g)
		}
	}
	if d.Alive() {
		t.Error("Expected damsel not alive after Die")
	}

	// Second Die is a no-op.
	d.Die()
	if reg.Len("visible") != 0 {
		t.Error("Second Die changed registry state")
	}
}

func TestDamselUpdateMovesWithCompass(t *testing.T) {
	reg := sprite.NewRegistry()
	d := testDamsel(t, reg, 100, 100, "visible", "damsels")

	// Pin the compass and suppress wandering for the tick.
	d.Mover.Compass = sprite.Compass{X: sprite.Right}
	d.wanderTicks = 1000

	d.Update("enemies", "friendlies")

	if d.Mover.Rect.Min.X != 100+damselSpeed {
		t.Errorf("Expected x %d after update, got %d", 100+damselSpeed, d.Mover.Rect.Min.X)
	}
	if d.enemies != "enemies" || d.friendlies != "friendlies" {
		t.Error("Expected update to store the current group names")
	}
}

func TestDamselWanderPicksBoundedHeadings(t *testing.T) {
	reg := sprite.NewRegistry()
	d := testDamsel(t, reg, 0, 0, "damsels")

	for i := 0; i < 50; i++ {
		d.wanderTicks = 0
		d.wander()

		c := d.Mover.Compass
		if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 {
			t.Fatalf("Wander produced out-of-range compass %v", c)
		}
		if c.X != 0 && c.Y != 0 {
			t.Fatalf("Wander produced diagonal compass %v", c)
		}
		if d.wanderTicks <= 0 {
			t.Fatal("Wander did not re-arm the timer")
		}
	}
}

func TestPlayerReadsHeldKeys(t *testing.T) {
	reg := sprite.NewRegistry()
	e, err := newEntity(reg, testFrames(3), 0, 0, 4, "obstacles")
	if err != nil {
		t.Fatalf("newEntity failed: %v", err)
	}
	input := &fakeInput{held: map[render.Key]bool{}}
	p := &Player{Entity: e, input: input}
	p.Handle = reg.Add(p, "friendlies")

	input.held[render.KeyD] = true
	input.held[render.KeyW] = true
	p.readInput()

	want := sprite.Compass{X: sprite.Right, Y: sprite.Up}
	if p.Mover.Compass != want {
		t.Errorf("Expected compass %v from held D+W, got %v", want, p.Mover.Compass)
	}

	// Releasing everything zeroes the compass.
	input.held = map[render.Key]bool{}
	p.readInput()
	if !p.Mover.Compass.IsZero() {
		t.Errorf("Expected zero compass with no keys held, got %v", p.Mover.Compass)
	}
}

func TestPlayerResolvesObstacleOverlap(t *testing.T) {
	reg := sprite.NewRegistry()
	e, err := newEntity(reg, testFrames(3), 100, 100, 4, "obstacles")
	if err != nil {
		t.Fatalf("newEntity failed: %v", err)
	}
	p := &Player{Entity: e, input: &fakeInput{held: map[render.Key]bool{}}}
	p.Handle = reg.Add(p, "friendlies")

	// An obstacle overlapping the right edge of the player's hitbox.
	wall := &stubObstacle{}
	wall.mover.SetTile(p.Mover.Hitbox.Max.X-2, p.Mover.Hitbox.Min.Y, image.Rect(0, 0, 32, 32))
	reg.Add(wall, "obstacles")

	p.resolveCollisions()

	if p.Mover.Hitbox.Overlaps(wall.mover.Hitbox) {
		t.Errorf("Expected player pushed out of obstacle, hitbox %v still overlaps %v",
			p.Mover.Hitbox, wall.mover.Hitbox)
	}
}

type stubObstacle struct {
	mover sprite.Mover
}

func (s *stubObstacle) State() *sprite.Mover {
	return &s.mover
}
